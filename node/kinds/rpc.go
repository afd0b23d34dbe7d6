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

	"github.com/golang-jwt/jwt/v4"
	"github.com/gorilla/websocket"

	"github.com/metabasenet/metabasenet/log"
	"github.com/metabasenet/metabasenet/node"
	"github.com/metabasenet/metabasenet/pkg/errors"
)

// RPCClient depends on the HTTPGET module's bounded client to reach a
// remote RPCMODE endpoint. No JSON-RPC method dispatch is implemented.
type RPCClient struct {
	Base
	httpGetName string
	client      *HTTPGet
}

func NewRPCClient(httpGetName string, sink log.Sink) *RPCClient {
	return &RPCClient{Base: NewBase("rpcclient", sink), httpGetName: httpGetName}
}

func (r *RPCClient) Initialize(c *node.Container) error {
	m, ok := c.GetObject(r.httpGetName)
	if !ok {
		return errors.Errorf("rpcclient: module %q not found", r.httpGetName)
	}
	hg, ok := m.(*HTTPGet)
	if !ok {
		return errors.Errorf("rpcclient: module %q is not an HTTPGET", r.httpGetName)
	}
	r.client = hg
	return r.Base.Initialize(c)
}

// RPCMode upgrades subscription connections to a websocket and validates
// inbound auth-RPC JWT handshakes. The subscription and method surface
// itself is out of scope.
type RPCMode struct {
	Base
	jwtSecret []byte
	upgrader  websocket.Upgrader
}

// NewRPCMode constructs the RPCMODE module with the given shared JWT
// secret, mirroring authrpc.jwtsecret.
func NewRPCMode(jwtSecret []byte, sink log.Sink) *RPCMode {
	return &RPCMode{
		Base:      NewBase("rpcmode", sink),
		jwtSecret: jwtSecret,
		upgrader:  websocket.Upgrader{ReadBufferSize: 1024, WriteBufferSize: 1024},
	}
}

// Upgrade promotes an HTTP connection to a websocket subscription
// transport, used by handlers built on top of RPCMode.
func (m *RPCMode) Upgrade(w http.ResponseWriter, r *http.Request) (*websocket.Conn, error) {
	conn, err := m.upgrader.Upgrade(w, r, nil)
	if err != nil {
		return nil, errors.Wrap(err, "rpcmode: websocket upgrade")
	}
	return conn, nil
}

// Authenticate validates a bearer token signed with the shared JWT secret.
func (m *RPCMode) Authenticate(token string) error {
	claims := jwt.RegisteredClaims{}
	_, err := jwt.ParseWithClaims(token, &claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.Errorf("rpcmode: unexpected signing method %v", t.Header["alg"])
		}
		return m.jwtSecret, nil
	})
	if err != nil {
		return errors.Wrap(err, "rpcmode: authenticate")
	}
	return nil
}
