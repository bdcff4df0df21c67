package inferenceclient

import (
	"bytes"
	"io"
	"net/http"
)

type captureKey struct{}

// responseCapture guarda o corpo de uma resposta fora de 2xx sem alterações
type responseCapture struct {
	statusCode int
	body       []byte
}

type capturingTransport struct {
	base http.RoundTripper
}

func (t *capturingTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	resp, err := t.base.RoundTrip(req)
	if err != nil {
		return resp, err
	}

	capture, ok := req.Context().Value(captureKey{}).(*responseCapture)
	if !ok || (resp.StatusCode >= 200 && resp.StatusCode < 300) {
		return resp, nil
	}

	body, err := io.ReadAll(resp.Body)
	resp.Body.Close()
	if err != nil {
		return nil, err
	}

	capture.statusCode = resp.StatusCode
	capture.body = body
	resp.Body = io.NopCloser(bytes.NewReader(body))

	return resp, nil
}
