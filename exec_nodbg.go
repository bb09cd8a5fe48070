//go:build !debug

package sqlhelper

func logExec(_ *Helper) {}
