package moniker

import (
	"testing"

	"github.com/anvil-platform/quench/internal/declaration"
)

func TestNew_MintsDistinctDiscriminators(t *testing.T) {
	a := New("db")
	b := New("db")
	if a.InstanceID == "" || b.InstanceID == "" {
		t.Fatal("instance discriminator missing")
	}
	if a == b {
		t.Fatal("two starts of the same child must not collide")
	}
}

func TestNode_MapsBackToDeclaredEntity(t *testing.T) {
	static := Moniker{Name: "db", InstanceID: "1"}
	if got := static.Node(); got != declaration.ChildNode("db") {
		t.Errorf("static Node() = %v, want child:db", got)
	}

	member := Moniker{Name: "w1", Collection: "workers", InstanceID: "2"}
	if got := member.Node(); got != declaration.CollectionNode("workers") {
		t.Errorf("member Node() = %v, want collection:workers", got)
	}
}

func TestString(t *testing.T) {
	static := Moniker{Name: "db", InstanceID: "1"}
	if got := static.String(); got != "db:1" {
		t.Errorf("String() = %q", got)
	}
	member := NewInCollection("workers", "w1")
	if want := "workers:w1:" + member.InstanceID; member.String() != want {
		t.Errorf("String() = %q, want %q", member.String(), want)
	}
}
