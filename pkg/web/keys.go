package web

type requestIDKey struct{}

type sessionIDKey struct{}
