package player

const (
	CashShopEnteredTimeout  uint32 = 305
	CashShopStallingTimeout uint32 = 90
)

// CashShopSub names the two legs of a cash shop visit: the long wait
// while whatever purchase/claim flow runs, and a short cooldown before
// handing control back.
type CashShopSub int

const (
	CashShopEntered CashShopSub = iota
	CashShopStalling
)

// CashShopState is entered when the detector reports the player is
// inside the cash shop overlay, regardless of what triggered it.
type CashShopState struct {
	Sub     CashShopSub
	Timeout Timeout
}

func (CashShopState) isPlayerState() {}

// UpdateCashShopState waits out the Entered window, then the Stalling
// window, then falls back to Idle so the arbitrator resumes normal
// operation.
func UpdateCashShopState(res Resources, e *Entity) {
	st, ok := e.State.(CashShopState)
	if !ok {
		return
	}

	timeout := st.Timeout
	max := CashShopEnteredTimeout
	if st.Sub == CashShopStalling {
		max = CashShopStallingTimeout
	}

	if timeout.Advance(max) == LifecycleEnded {
		if st.Sub == CashShopEntered {
			transition(e, CashShopState{Sub: CashShopStalling}, nil)
			return
		}
		transition(e, Idle{}, nil)
		return
	}

	transition(e, CashShopState{Sub: st.Sub, Timeout: timeout}, nil)
}
