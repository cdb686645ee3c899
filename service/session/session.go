package session

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/asaskevich/govalidator"
	"github.com/google/uuid"
	"github.com/pandodao/spl-minter/core"
	"github.com/pandodao/spl-minter/service/address"
	"github.com/pandodao/spl-minter/worker/refresher"
)

var ErrConnectInProgress = errors.New("wallet connection already in progress")

type Config struct {
	RefreshInterval time.Duration `valid:"required"`
	StatusTTL       time.Duration `valid:"required"`
	// LoadDelay simulates the latency of reading the token list.
	LoadDelay time.Duration
	Network   core.Network
}

// Controller owns the wallet session of one browser page: connection state,
// network selection, the current status notification and the owner's tokens.
//
// Every async result is applied only if the connection epoch it started under
// is still current, and a notification is applied only if no newer operation
// has already notified.
type Controller struct {
	ledger    core.LedgerService
	tokens    core.TokenStore
	addresses core.AddressGenerator
	logger    *slog.Logger
	cfg       Config
	now       func() time.Time

	mux         sync.Mutex
	id          string
	state       State
	address     string
	network     core.Network
	balance     core.Balance
	list        []*core.Token
	form        core.TokenForm
	status      core.Notification
	statusTimer *time.Timer
	statusOp    uint64
	ops         uint64
	epoch       uint64
	version     uint64
	closed      bool

	stopRefresh func()
	refreshers  sync.WaitGroup

	subMux    sync.Mutex
	subs      map[int]func(Snapshot)
	nextSub   int
	published uint64
}

func New(
	wallet core.WalletProvider,
	ledger core.LedgerService,
	tokens core.TokenStore,
	addresses core.AddressGenerator,
	logger *slog.Logger,
	cfg Config,
) *Controller {
	if _, err := govalidator.ValidateStruct(cfg); err != nil {
		panic(err)
	}

	if cfg.Network == "" {
		cfg.Network = core.NetworkDevnet
	}

	if !cfg.Network.Valid() {
		panic(fmt.Errorf("invalid network %q", cfg.Network))
	}

	id := uuid.NewString()
	c := &Controller{
		ledger:    ledger,
		tokens:    tokens,
		addresses: addresses,
		logger:    logger.With("service", "session", "session", id),
		cfg:       cfg,
		now:       time.Now,
		id:        id,
		network:   cfg.Network,
		form:      core.DefaultTokenForm(),
		subs:      make(map[int]func(Snapshot)),
	}

	// the extension lives as long as the page, subscribe once
	if wallet != nil {
		wallet.OnDisconnect(c.handleDisconnect)
	}

	c.logger.Info("initialized solana connection", "network", c.network, "endpoint", c.network.Endpoint())
	return c
}

func (c *Controller) Snapshot() Snapshot {
	c.mux.Lock()
	defer c.mux.Unlock()

	return c.snapshotLocked()
}

// Subscribe calls fn with every new snapshot, in version order, until cancel is called.
// fn runs synchronously and must not call back into the controller's actions.
func (c *Controller) Subscribe(fn func(Snapshot)) (cancel func()) {
	c.subMux.Lock()
	id := c.nextSub
	c.nextSub++
	c.subs[id] = fn
	c.subMux.Unlock()

	return func() {
		c.subMux.Lock()
		delete(c.subs, id)
		c.subMux.Unlock()
	}
}

func (c *Controller) SelectNetwork(network core.Network) error {
	if !network.Valid() {
		return fmt.Errorf("unknown network %q", network)
	}

	c.update(func() {
		if c.network != network {
			c.network = network
			c.logger.Info("initialized solana connection", "network", network, "endpoint", network.Endpoint())
		}
	})

	return nil
}

func (c *Controller) SetForm(form core.TokenForm) {
	c.update(func() {
		c.form = form
	})
}

func (c *Controller) Connect(ctx context.Context, opts core.ConnectOptions) error {
	c.mux.Lock()
	if c.state == StateConnecting {
		c.mux.Unlock()
		return ErrConnectInProgress
	}

	op := c.beginLocked()
	c.state = StateConnecting
	c.notifyLocked(op, core.NotificationLoading, "Connecting to Phantom wallet...")
	c.commitAndUnlock()

	addr, err := c.ledger.Connect(ctx, opts)
	if err != nil {
		c.logger.Error("ledger.Connect", "err", err)

		msg := "Connection failed: " + err.Error()
		if errors.Is(err, core.ErrNoWalletProvider) {
			msg = err.Error()
		}

		c.update(func() {
			c.state = StateDisconnected
			if c.address != "" {
				c.state = StateConnected
			}

			c.notifyLocked(op, core.NotificationError, msg)
		})

		return err
	}

	c.update(func() {
		if c.address != addr {
			c.balance = core.Balance{}
			c.list = nil
		}

		c.epoch++
		c.address = addr
		c.state = StateConnected
		c.notifyLocked(op, core.NotificationSuccess, "Wallet connected successfully!")
		c.startRefreshLocked()
	})

	c.logger.Info("wallet connected", "address", addr)

	// the connection stands even if the caller goes away now
	ctx = context.WithoutCancel(ctx)

	if err := c.RefreshBalance(ctx); err != nil {
		c.logger.Warn("RefreshBalance", "err", err)
	}

	if err := c.LoadTokens(ctx); err != nil {
		c.logger.Warn("LoadTokens", "err", err)
	}

	return nil
}

// RefreshBalance fetches the balance in the background, it never notifies.
func (c *Controller) RefreshBalance(ctx context.Context) error {
	c.mux.Lock()
	addr, network, epoch := c.address, c.network, c.epoch
	c.mux.Unlock()

	if addr == "" {
		return nil
	}

	amount, err := c.ledger.Balance(ctx, network, addr)

	c.update(func() {
		if c.epoch != epoch || c.address != addr || c.network != network {
			return
		}

		if err != nil {
			c.balance = core.Balance{State: core.BalanceError}
		} else {
			c.balance = core.BalanceOf(amount)
		}
	})

	return err
}

func (c *Controller) LoadTokens(ctx context.Context) error {
	c.mux.Lock()
	if c.address == "" {
		c.mux.Unlock()
		return nil
	}

	op := c.beginLocked()
	addr, epoch := c.address, c.epoch
	c.notifyLocked(op, core.NotificationLoading, "Loading tokens...")
	c.commitAndUnlock()

	tokens, err := c.listOwner(ctx, addr)
	if err != nil {
		c.logger.Error("tokens.ListOwner", "err", err)
		c.update(func() {
			c.notifyLocked(op, core.NotificationError, "Error loading tokens")
		})

		return err
	}

	c.update(func() {
		if c.epoch != epoch {
			return
		}

		c.list = tokens
		c.notifyLocked(op, core.NotificationSuccess, "Tokens loaded!")
	})

	return nil
}

func (c *Controller) listOwner(ctx context.Context, addr string) ([]*core.Token, error) {
	if c.cfg.LoadDelay > 0 {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(c.cfg.LoadDelay):
		}
	}

	return c.tokens.ListOwner(ctx, addr)
}

// CreateToken validates form, waits for the simulated confirmation and persists
// the new token. Nothing is written when any step fails.
func (c *Controller) CreateToken(ctx context.Context, form core.TokenForm) (*core.Token, error) {
	c.mux.Lock()
	if c.address == "" {
		c.mux.Unlock()
		return nil, core.ErrNotConnected
	}

	op := c.beginLocked()
	owner, network := c.address, c.network
	c.notifyLocked(op, core.NotificationLoading, "Creating your SPL token...")
	c.commitAndUnlock()

	logger := c.logger.With("symbol", form.Symbol, "network", network)

	token, err := c.createToken(ctx, form, owner, network)
	if err != nil {
		logger.Error("create token", "err", err)
		c.update(func() {
			c.notifyLocked(op, core.NotificationError, "Token creation failed: "+err.Error())
		})

		return nil, err
	}

	logger.Info("token created", "mint", token.MintAddress)
	c.update(func() {
		c.notifyLocked(op, core.NotificationSuccess, fmt.Sprintf(`Token "%s" created successfully!`, token.Name))
		c.form = core.DefaultTokenForm()
	})

	if err := c.LoadTokens(ctx); err != nil {
		logger.Warn("LoadTokens", "err", err)
	}

	return token, nil
}

func (c *Controller) createToken(ctx context.Context, form core.TokenForm, owner string, network core.Network) (*core.Token, error) {
	if err := validateForm(form); err != nil {
		return nil, err
	}

	if err := c.ledger.SubmitToken(ctx, core.TokenPayload{
		Form:    form,
		Owner:   owner,
		Network: network,
	}); err != nil {
		return nil, err
	}

	mint := c.addresses.Generate()
	if !address.Valid(mint) {
		return nil, fmt.Errorf("generated mint address %q is malformed", mint)
	}

	token := &core.Token{
		Name:                   form.Name,
		Symbol:                 form.Symbol,
		Decimals:               form.Decimals,
		InitialSupply:          form.InitialSupply,
		Description:            form.Description,
		Image:                  form.Image,
		FreezeAuthorityEnabled: form.FreezeAuthorityEnabled,
		MintAuthorityRetained:  form.MintAuthorityRetained,
		MintAddress:            mint,
		Owner:                  owner,
		Network:                network,
		CreatedAt:              c.now().UTC(),
	}

	if err := c.tokens.Append(ctx, token); err != nil {
		return nil, err
	}

	return token, nil
}

func (c *Controller) handleDisconnect() {
	c.update(func() {
		op := c.beginLocked()
		c.epoch++
		c.address = ""
		c.balance = core.Balance{}
		c.list = nil
		c.state = StateDisconnected
		c.stopRefreshLocked()
		c.notifyLocked(op, core.NotificationError, "Wallet disconnected")
	})

	c.logger.Info("wallet disconnected")
}

// Close stops the balance refresher and the status timer, and waits for every
// refresher started by this controller to exit.
func (c *Controller) Close() {
	c.mux.Lock()
	c.closed = true
	c.stopRefreshLocked()
	if c.statusTimer != nil {
		c.statusTimer.Stop()
		c.statusTimer = nil
	}
	c.mux.Unlock()

	c.refreshers.Wait()
}

func (c *Controller) beginLocked() uint64 {
	c.ops++
	return c.ops
}

// notifyLocked replaces the status unless a newer operation already notified.
func (c *Controller) notifyLocked(op uint64, kind core.NotificationKind, msg string) {
	if op < c.statusOp {
		return
	}

	if c.statusTimer != nil {
		c.statusTimer.Stop()
		c.statusTimer = nil
	}

	c.statusOp = op
	c.status = core.Notification{
		ID:        uuid.NewString(),
		Kind:      kind,
		Message:   msg,
		CreatedAt: c.now(),
	}

	if kind == core.NotificationSuccess && !c.closed {
		id := c.status.ID
		c.statusTimer = time.AfterFunc(c.cfg.StatusTTL, func() {
			c.expire(id)
		})
	}
}

func (c *Controller) expire(id string) {
	c.update(func() {
		if c.status.ID == id {
			c.status = core.Notification{}
		}
	})
}

func (c *Controller) startRefreshLocked() {
	c.stopRefreshLocked()
	if c.closed {
		return
	}

	ctx, cancel := context.WithCancel(context.Background())
	w := refresher.New(c, c.logger, refresher.Config{Interval: c.cfg.RefreshInterval})

	c.refreshers.Add(1)
	go func() {
		defer c.refreshers.Done()
		_ = w.Run(ctx)
	}()

	c.stopRefresh = cancel
}

// stopRefreshLocked cancels the running refresher without waiting for it.
func (c *Controller) stopRefreshLocked() {
	if c.stopRefresh != nil {
		c.stopRefresh()
		c.stopRefresh = nil
	}
}

func (c *Controller) update(fn func()) {
	c.mux.Lock()
	fn()
	c.commitAndUnlock()
}

func (c *Controller) commitAndUnlock() {
	c.version++
	snap := c.snapshotLocked()
	c.mux.Unlock()

	c.publish(snap)
}

func (c *Controller) publish(snap Snapshot) {
	c.subMux.Lock()
	defer c.subMux.Unlock()

	if snap.Version <= c.published {
		return
	}

	c.published = snap.Version
	for _, fn := range c.subs {
		fn(snap)
	}
}

func (c *Controller) snapshotLocked() Snapshot {
	return Snapshot{
		Version:   c.version,
		SessionID: c.id,
		State:     c.state,
		Wallet: core.WalletSession{
			Address:      c.address,
			ShortAddress: core.ShortAddress(c.address),
			Network:      c.network,
			Balance:      c.balance,
		},
		Status: c.status,
		Tokens: cloneTokens(c.list),
		Form:   c.form,
	}
}
