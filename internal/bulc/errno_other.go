//go:build !unix

package bulc

func errnoKind(error) string { return "" }
