package app

import "testing"

func TestTxPublisher_NilBus(t *testing.T) {
	a := &Application{}
	if a.TxPublisher() != nil {
		t.Fatal("expected a nil interface when no event bus is configured")
	}
}
