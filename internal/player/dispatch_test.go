package player

import (
	"testing"

	"fieldbot/internal/actionqueue"
	"fieldbot/internal/detect"
	"fieldbot/internal/geom"
)

func TestUpdateRefreshesPositionBeforeDispatch(t *testing.T) {
	res, _ := testResources()
	e := &Entity{State: Idle{}}
	pos := geom.Point{X: 3, Y: 4}

	Update(res, e, &pos)

	if e.Context.LastKnownPos == nil || *e.Context.LastKnownPos != pos {
		t.Fatalf("expected LastKnownPos to be refreshed to %+v, got %+v", pos, e.Context.LastKnownPos)
	}
}

func TestUpdateIdleEntersCashShopOnDetection(t *testing.T) {
	res, _ := testResources()
	res.Detector = &detect.Scripted{PlayerInCashShop: []bool{true}}
	e := &Entity{State: Idle{}}
	pos := geom.Point{X: 0, Y: 0}

	Update(res, e, &pos)

	if _, ok := e.State.(CashShopState); !ok {
		t.Fatalf("expected cash shop detection to transition out of Idle, got %T", e.State)
	}
}

func TestUpdateIdleStaysIdleWithoutPositionOrWork(t *testing.T) {
	res, _ := testResources()
	e := &Entity{State: Idle{}}

	Update(res, e, nil)

	if _, ok := e.State.(Idle); !ok {
		t.Fatalf("expected to remain Idle with no minimap reading, got %T", e.State)
	}
}

func TestUpdateIdleStartsMoveFromQueue(t *testing.T) {
	res, _ := testResources()
	pos := geom.Point{X: 0, Y: 0}
	dest := geom.Point{X: 20, Y: 0}
	res.Queue.Enqueue(actionqueue.Action{Kind: actionqueue.KindMove, Move: &actionqueue.Move{Dest: dest}})
	e := &Entity{State: Idle{}}

	Update(res, e, &pos)

	if _, ok := e.State.(MovingState); !ok {
		t.Fatalf("expected a queued move action to pull the entity out of Idle, got %T", e.State)
	}
}
