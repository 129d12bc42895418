package ecs

import (
	"testing"

	"github.com/milk9111/duskrun/common"
	"github.com/milk9111/duskrun/ecs/component"
)

func TestEnemyLifecycle(t *testing.T) {
	cases := []struct {
		name    string
		spawned int
		killed  int // -1 = none
	}{
		{"lone_slime", 1, 0},
		{"wave_kill_middle", 3, 1},
		{"wave_survives", 2, -1},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			w := NewWorld()
			enemies := make([]Entity, 0, c.spawned)
			for i := 0; i < c.spawned; i++ {
				e := CreateEntity(w)
				if err := Add(w, e, component.EnemyComponent.Kind(), &component.Enemy{Speed: 3}); err != nil {
					t.Fatalf("add enemy: %v", err)
				}
				enemies = append(enemies, e)
			}
			if n := w.Count(component.EnemyComponent.Kind()); n != c.spawned {
				t.Fatalf("expected %d enemies, got %d", c.spawned, n)
			}
			if c.killed < 0 {
				return
			}
			if !DestroyEntity(w, enemies[c.killed]) {
				t.Fatalf("DestroyEntity should return true for a live enemy")
			}
			if IsAlive(w, enemies[c.killed]) {
				t.Fatalf("enemy should not be alive after destruction")
			}
			if n := w.Count(component.EnemyComponent.Kind()); n != c.spawned-1 {
				t.Fatalf("expected %d enemies after kill, got %d", c.spawned-1, n)
			}
		})
	}
}

func toSet(ents []Entity) map[Entity]struct{} {
	m := make(map[Entity]struct{}, len(ents))
	for _, e := range ents {
		m[e] = struct{}{}
	}
	return m
}

func intPtr(i int) *int {
	return &i
}

func stringPtr(s string) *string {
	return &s
}

func TestPlayerComponents(t *testing.T) {
	w := NewWorld()
	player := CreateEntity(w)

	tests := []struct {
		name     string
		setup    func() error
		check    func(t *testing.T)
		teardown func() bool
	}{
		{
			name: "transform",
			setup: func() error {
				return Add(w, player, component.TransformComponent.Kind(), &component.Transform{Position: common.V3(1, 0, 2)})
			},
			check: func(t *testing.T) {
				tr, ok := Get(w, player, component.TransformComponent.Kind())
				if !ok || tr.Position != common.V3(1, 0, 2) {
					t.Fatalf("expected (1,0,2), got %v ok=%v", tr, ok)
				}
			},
			teardown: func() bool { return Remove(w, player, component.TransformComponent.Kind()) },
		},
		{
			name: "health_mutates_in_place",
			setup: func() error {
				return Add(w, player, component.HealthComponent.Kind(), &component.Health{Current: 5, Max: 5})
			},
			check: func(t *testing.T) {
				h, _ := Get(w, player, component.HealthComponent.Kind())
				h.Damage(2)
				h, ok := Get(w, player, component.HealthComponent.Kind())
				if !ok || h.Current != 3 {
					t.Fatalf("expected 3 health, got %v ok=%v", h, ok)
				}
			},
			teardown: func() bool { return Remove(w, player, component.HealthComponent.Kind()) },
		},
		{
			name: "invulnerable",
			setup: func() error {
				return Add(w, player, component.InvulnerableComponent.Kind(), &component.Invulnerable{Remaining: 1})
			},
			check: func(t *testing.T) {
				if !Has(w, player, component.InvulnerableComponent.Kind()) {
					t.Fatalf("expected invulnerable present")
				}
			},
			teardown: func() bool { return Remove(w, player, component.InvulnerableComponent.Kind()) },
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if err := tc.setup(); err != nil {
				t.Fatalf("setup failed: %v", err)
			}
			tc.check(t)
			if !tc.teardown() {
				t.Fatalf("teardown failed for %s", tc.name)
			}
		})
	}
	if err := Add[component.Health](w, player, component.HealthComponent.Kind(), nil); err != component.ErrNilComponent {
		t.Fatalf("expected ErrNilComponent, got %v", err)
	}
}

func TestForEachSkipsCollectedPickups(t *testing.T) {
	w := NewWorld()
	kind := component.PickupComponent.Kind()

	a := CreateEntity(w)
	b := CreateEntity(w)
	c := CreateEntity(w)
	_ = Add(w, a, kind, &component.Pickup{Radius: 1.5})
	_ = Add(w, c, kind, &component.Pickup{Radius: 1.5, Collected: true})

	var open []Entity
	ForEach(w, kind, func(e Entity, p *component.Pickup) {
		if !p.Collected {
			open = append(open, e)
		}
	})
	set := toSet(open)
	if _, ok := set[a]; !ok {
		t.Fatalf("expected a in ForEach result")
	}
	if _, ok := set[b]; ok {
		t.Fatalf("b has no pickup")
	}
	if _, ok := set[c]; ok {
		t.Fatalf("c is already collected")
	}
}

func TestForEach3MatchesLiveEnemies(t *testing.T) {
	enemyKind := component.EnemyComponent.Kind()
	transformKind := component.TransformComponent.Kind()
	healthKind := component.HealthComponent.Kind()

	spawn := func(t *testing.T, w *World, withHealth bool) Entity {
		t.Helper()
		e := CreateEntity(w)
		if err := Add(w, e, enemyKind, &component.Enemy{Speed: 3}); err != nil {
			t.Fatal(err)
		}
		if err := Add(w, e, transformKind, &component.Transform{}); err != nil {
			t.Fatal(err)
		}
		if withHealth {
			if err := Add(w, e, healthKind, &component.Health{Current: 3, Max: 3}); err != nil {
				t.Fatal(err)
			}
		}
		return e
	}
	collect := func(w *World) []Entity {
		var res []Entity
		ForEach3(w, enemyKind, transformKind, healthKind, func(e Entity, _ *component.Enemy, _ *component.Transform, _ *component.Health) {
			res = append(res, e)
		})
		return res
	}

	tests := []struct {
		name string
		run  func(t *testing.T)
	}{
		{
			name: "intersection",
			run: func(t *testing.T) {
				w := NewWorld()
				spawn(t, w, false)
				full := spawn(t, w, true)
				prop := CreateEntity(w)
				_ = Add(w, prop, transformKind, &component.Transform{})

				res := collect(w)
				if len(res) != 1 || res[0] != full {
					t.Fatalf("expected only the full enemy, got %v", res)
				}
			},
		},
		{
			name: "ignores_destroyed_enemies",
			run: func(t *testing.T) {
				w := NewWorld()
				e := spawn(t, w, true)
				if !DestroyEntity(w, e) {
					t.Fatal("failed to destroy enemy")
				}
				if res := collect(w); len(res) != 0 {
					t.Fatalf("expected empty result after destroy, got %v", res)
				}
			},
		},
		{
			name: "missing_store",
			run: func(t *testing.T) {
				w := NewWorld()
				spawn(t, w, false)
				if res := collect(w); len(res) != 0 {
					t.Fatalf("expected empty when health store is missing, got %v", res)
				}
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, tc.run)
	}
}

func TestDestroyedHandleIsStale(t *testing.T) {
	w := NewWorld()
	h := component.NewComponent[int]()

	e := CreateEntity(w)
	if err := Add(w, e, h.Kind(), intPtr(1)); err != nil {
		t.Fatal(err)
	}
	DestroyEntity(w, e)

	reused := CreateEntity(w)
	if reused.id() != e.id() {
		t.Fatalf("expected id reuse, got %v and %v", e, reused)
	}
	if IsAlive(w, e) {
		t.Fatalf("stale handle reported alive")
	}
	if Has(w, reused, h.Kind()) {
		t.Fatalf("reused entity inherited a component")
	}
	if err := Add(w, e, h.Kind(), intPtr(2)); err != component.ErrEntityNotAlive {
		t.Fatalf("expected ErrEntityNotAlive, got %v", err)
	}
}

func TestQueryAndFirst(t *testing.T) {
	w := NewWorld()
	ka := component.NewComponentKind[int]()
	kb := component.NewComponentKind[string]()

	e1 := CreateEntity(w)
	e2 := CreateEntity(w)
	_ = Add(w, e1, ka, intPtr(1))
	_ = Add(w, e2, ka, intPtr(2))
	_ = Add(w, e2, kb, stringPtr("b"))

	res := w.Query(ka, kb)
	if len(res) != 1 || res[0] != e2 {
		t.Fatalf("expected only e2, got %v", res)
	}
	if n := w.Count(ka); n != 2 {
		t.Fatalf("expected 2 ints, got %d", n)
	}
	if _, ok := w.First(kb); !ok {
		t.Fatalf("expected First to find e2")
	}
}

type recordSystem struct {
	name string
	log  *[]string
}

func (s recordSystem) Update(w *World) { *s.log = append(*s.log, s.name) }

func TestSchedulerRunsStagesInOrder(t *testing.T) {
	var log []string
	s := NewScheduler(
		Stage{Name: "a", Systems: []System{recordSystem{"a1", &log}}},
		Stage{Name: "b", Systems: []System{recordSystem{"b1", &log}}},
	)
	s.Add("a", recordSystem{"a2", &log})
	s.Add("c", recordSystem{"c1", &log})

	w := NewWorld()
	w.AddSystem(s)
	w.Update(1.0 / 60)

	want := []string{"a1", "a2", "b1", "c1"}
	if len(log) != len(want) {
		t.Fatalf("expected %v, got %v", want, log)
	}
	for i := range want {
		if log[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, log)
		}
	}
	if w.Frame() != 1 || w.Delta() != 1.0/60 {
		t.Fatalf("unexpected frame bookkeeping: frame=%d dt=%v", w.Frame(), w.Delta())
	}
}

func TestEventQueueDrainByType(t *testing.T) {
	var q EventQueue
	q.Push(Event{Type: "hit"})
	q.Push(Event{Type: "miss"})
	q.Push(Event{Type: "hit"})

	if got := q.Drain("hit"); len(got) != 2 {
		t.Fatalf("expected 2 hits, got %d", len(got))
	}
	if q.Len() != 1 {
		t.Fatalf("expected miss to remain, got %d", q.Len())
	}
}
