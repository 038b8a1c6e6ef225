package declaration

import (
	"strings"
	"testing"
)

func validDecl() Declaration {
	return Declaration{
		Name: "root",
		Children: []Child{
			{Name: "db", Version: "1.2.0"},
			{Name: "app"},
		},
		Collections: []string{"workers"},
		Storage: []StorageDeclaration{
			{Name: "data", Backing: FromChild("db")},
		},
		Offers: []Offer{
			{Kind: KindService, Capability: "svc.db", Source: FromChild("db"), Target: ChildNode("app")},
			{Kind: KindStorage, Capability: "data", Source: FromSelf(), Target: CollectionNode("workers")},
		},
		MinRuntime: ">=1.0.0",
	}
}

func TestValidate_AcceptsWellFormedDeclaration(t *testing.T) {
	if err := Validate(validDecl()); err != nil {
		t.Fatalf("Validate: %v", err)
	}
}

func TestValidate_Rejections(t *testing.T) {
	cases := []struct {
		name    string
		mutate  func(*Declaration)
		wantSub string
	}{
		{
			name:    "duplicate child",
			mutate:  func(d *Declaration) { d.Children = append(d.Children, Child{Name: "db"}) },
			wantSub: "duplicate child",
		},
		{
			name:    "empty child name",
			mutate:  func(d *Declaration) { d.Children = append(d.Children, Child{Name: "  "}) },
			wantSub: "empty name",
		},
		{
			name:    "bad child version",
			mutate:  func(d *Declaration) { d.Children[0].Version = "latest" },
			wantSub: "version",
		},
		{
			name:    "duplicate collection",
			mutate:  func(d *Declaration) { d.Collections = append(d.Collections, "workers") },
			wantSub: "duplicate collection",
		},
		{
			name: "storage backed by undeclared child",
			mutate: func(d *Declaration) {
				d.Storage = append(d.Storage, StorageDeclaration{Name: "blob", Backing: FromChild("ghost")})
			},
			wantSub: "undeclared child",
		},
		{
			name: "storage offer without declaration",
			mutate: func(d *Declaration) {
				d.Offers = append(d.Offers, Offer{Kind: KindStorage, Capability: "blob", Source: FromSelf(), Target: ChildNode("app")})
			},
			wantSub: "no storage declaration",
		},
		{
			name: "offer from undeclared child",
			mutate: func(d *Declaration) {
				d.Offers = append(d.Offers, Offer{Kind: KindService, Capability: "x", Source: FromChild("ghost"), Target: ChildNode("app")})
			},
			wantSub: "undeclared child",
		},
		{
			name: "offer targeting undeclared collection",
			mutate: func(d *Declaration) {
				d.Offers = append(d.Offers, Offer{Kind: KindService, Capability: "x", Source: FromChild("db"), Target: CollectionNode("ghosts")})
			},
			wantSub: "targets undeclared",
		},
		{
			name:    "bad minRuntime constraint",
			mutate:  func(d *Declaration) { d.MinRuntime = "not-a-constraint" },
			wantSub: "minRuntime",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			d := validDecl()
			tc.mutate(&d)
			err := Validate(d)
			if err == nil {
				t.Fatal("Validate accepted a malformed declaration")
			}
			if !strings.Contains(err.Error(), tc.wantSub) {
				t.Errorf("error %q does not mention %q", err, tc.wantSub)
			}
		})
	}
}

func TestRuntimeCompatible(t *testing.T) {
	d := validDecl()

	ok, err := RuntimeCompatible(d, "1.4.0")
	if err != nil || !ok {
		t.Errorf("RuntimeCompatible(1.4.0) = %v, %v; want true", ok, err)
	}

	ok, err = RuntimeCompatible(d, "0.9.0")
	if err != nil || ok {
		t.Errorf("RuntimeCompatible(0.9.0) = %v, %v; want false", ok, err)
	}

	d.MinRuntime = ""
	ok, err = RuntimeCompatible(d, "whatever")
	if err != nil || !ok {
		t.Errorf("empty constraint should match any runtime: %v, %v", ok, err)
	}

	d.MinRuntime = ">=1.0.0"
	if _, err := RuntimeCompatible(d, "not-semver"); err == nil {
		t.Error("malformed runtime version should error, not silently match")
	}
}
