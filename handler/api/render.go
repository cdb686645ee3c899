package api

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/oxtoacart/bpool"
	"github.com/pandodao/spl-minter/core"
	"github.com/pandodao/spl-minter/service/session"
)

var bufpool = bpool.NewBufferPool(64)

func renderJSON(w http.ResponseWriter, status int, v any) {
	buf := bufpool.Get()
	defer bufpool.Put(buf)

	if err := json.NewEncoder(buf).Encode(v); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_, _ = buf.WriteTo(w)
}

func renderError(w http.ResponseWriter, status int, err error) {
	renderJSON(w, status, map[string]string{
		"error": err.Error(),
	})
}

// decodeBody decodes a JSON body into v, an empty body leaves v untouched.
func decodeBody(r *http.Request, v any) error {
	if r.Body == nil || r.Body == http.NoBody {
		return nil
	}

	if err := json.NewDecoder(r.Body).Decode(v); err != nil && !errors.Is(err, io.EOF) {
		return err
	}

	return nil
}

func statusOf(err error) int {
	if errors.Is(err, session.ErrConnectInProgress) {
		return http.StatusConflict
	}

	switch core.KindOf(err) {
	case core.KindValidation:
		return http.StatusBadRequest
	case core.KindSimulatedFee:
		return http.StatusPaymentRequired
	case core.KindNoWalletProvider:
		return http.StatusNotFound
	case core.KindConnectionRejected:
		return http.StatusForbidden
	case core.KindNotConnected:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
