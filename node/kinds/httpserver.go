// Copyright 2022-2026 The N42 Authors
// This file is part of the N42 library.
//
// The N42 library is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// The N42 library is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with the N42 library. If not, see <http://www.gnu.org/licenses/>.

package kinds

import (
	"context"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"

	"github.com/metabasenet/metabasenet/log"
	"github.com/metabasenet/metabasenet/node"
)

// HTTPServer exposes a /healthz liveness endpoint and a Prometheus
// /metrics handler behind CORS middleware. It implements
// node.HTTPHostConfig so other kinds can look it up by capability
// instead of importing this package directly.
type HTTPServer struct {
	Base
	addr   string
	server *http.Server
}

// NewHTTPServer constructs the HTTPSERVER module listening on addr
// (e.g. "127.0.0.1:8645").
func NewHTTPServer(addr string, sink log.Sink) *HTTPServer {
	return &HTTPServer{Base: NewBase("httpserver", sink), addr: addr}
}

// ListenAddr implements node.HTTPHostConfig.
func (h *HTTPServer) ListenAddr() string { return h.addr }

func (h *HTTPServer) Initialize(c *node.Container) error {
	mux := http.NewServeMux()
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	mux.Handle("/metrics", promhttp.Handler())

	handler := cors.Default().Handler(mux)
	h.server = &http.Server{
		Addr:    h.addr,
		Handler: handler,
	}
	return h.Base.Initialize(c)
}

func (h *HTTPServer) Run(c *node.Container) error {
	go func() {
		_ = h.server.ListenAndServe()
	}()
	return h.Base.Run(c)
}

func (h *HTTPServer) Halt(c *node.Container) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_ = h.server.Shutdown(ctx)
	return h.Base.Halt(c)
}
