package bindex

import "errors"

var (
	ErrNilInvoice      = errors.New("bindex: nil invoice")
	ErrCorruptSnapshot = errors.New("bindex: corrupt snapshot")
)
