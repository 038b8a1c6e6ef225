package shutdown

import (
	"testing"

	"github.com/anvil-platform/quench/internal/declaration"
	"github.com/anvil-platform/quench/internal/moniker"
)

func TestExpand_ChildMatchesAllLiveInstances(t *testing.T) {
	old := moniker.Moniker{Name: "a", InstanceID: "old"}
	fresh := moniker.Moniker{Name: "a", InstanceID: "new"}
	other := moniker.Moniker{Name: "b", InstanceID: "b-1"}
	collected := moniker.Moniker{Name: "a", Collection: "pool", InstanceID: "p-1"}

	got := Expand(declaration.ChildNode("a"), []moniker.Moniker{old, fresh, other, collected})
	if len(got) != 2 {
		t.Fatalf("Expand(child a) = %v, want the two static a instances", got)
	}
	for _, want := range []moniker.Moniker{old, fresh} {
		if _, ok := got[want]; !ok {
			t.Errorf("Expand(child a) missing %s", want)
		}
	}
}

func TestExpand_ChildWithNoInstancesIsEmpty(t *testing.T) {
	got := Expand(declaration.ChildNode("a"), []moniker.Moniker{{Name: "b", InstanceID: "1"}})
	if len(got) != 0 {
		t.Fatalf("Expand = %v, want empty", got)
	}
}

func TestExpand_CollectionMatchesMembership(t *testing.T) {
	w1 := moniker.Moniker{Name: "w1", Collection: "workers", InstanceID: "1"}
	w2 := moniker.Moniker{Name: "w2", Collection: "workers", InstanceID: "2"}
	other := moniker.Moniker{Name: "w1", Collection: "drains", InstanceID: "3"}
	static := moniker.Moniker{Name: "workers", InstanceID: "4"}

	got := Expand(declaration.CollectionNode("workers"), []moniker.Moniker{w1, w2, other, static})
	if len(got) != 2 {
		t.Fatalf("Expand(collection workers) = %v, want w1 and w2", got)
	}
	if _, ok := got[static]; ok {
		t.Error("static child named like the collection must not match")
	}
}
