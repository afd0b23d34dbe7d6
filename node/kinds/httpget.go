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
	"net/http"
	"time"

	"github.com/metabasenet/metabasenet/log"
)

// HTTPGet is a bounded HTTP client, the transport RPCCLIENT uses to reach
// a remote node's HTTPSERVER.
type HTTPGet struct {
	Base
	client *http.Client
}

// NewHTTPGet constructs the HTTPGET module with the given request timeout.
func NewHTTPGet(timeout time.Duration, sink log.Sink) *HTTPGet {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &HTTPGet{
		Base:   NewBase("httpget", sink),
		client: &http.Client{Timeout: timeout},
	}
}

// Client returns the underlying bounded http.Client.
func (h *HTTPGet) Client() *http.Client { return h.client }
