// Package wsframe implements RFC 6455 WebSocket frame encoding and
// decoding. It is deliberately narrow: it knows nothing about the HTTP
// upgrade handshake, connection pooling, or TLS. Given an io.Reader it
// produces whole application messages through a pull-style Listener
// callback; given an io.Writer it emits framed messages and control
// frames. The handshake that produces the underlying stream lives in
// internal/handshake.
package wsframe
