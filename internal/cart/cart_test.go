package cart

import (
    "testing"

    "github.com/shopspring/decimal"
    "github.com/stretchr/testify/assert"
    "github.com/stretchr/testify/require"

    "github.com/iliyamo/sanadimo/internal/store"
)

func item(id string, price int64) Item {
    return Item{ID: id, Title: "title " + id, Price: decimal.NewFromInt(price), Image: "/img/" + id + ".webp"}
}

func TestAddItemTwiceMergesLine(t *testing.T) {
    c := New()
    c.AddItem(item("lunch-1", 25))
    c.AddItem(item("lunch-1", 25))

    lines := c.Snapshot().Items()
    require.Len(t, lines, 1)
    assert.Equal(t, 2, lines[0].Quantity)
}

func TestAddItemKeepsPosition(t *testing.T) {
    c := New()
    c.AddItem(item("a", 1))
    c.AddItem(item("b", 1))
    c.AddItem(item("a", 1))

    lines := c.Snapshot().Items()
    require.Len(t, lines, 2)
    assert.Equal(t, "a", lines[0].ID)
    assert.Equal(t, 2, lines[0].Quantity)
    assert.Equal(t, "b", lines[1].ID)
}

func TestUpdateQuantity(t *testing.T) {
    tests := []struct {
        name     string
        quantity int
        want     []Line
    }{
        {name: "set", quantity: 4, want: []Line{{ID: "a", Quantity: 4}, {ID: "b", Quantity: 1}}},
        {name: "zero removes", quantity: 0, want: []Line{{ID: "b", Quantity: 1}}},
        {name: "negative removes", quantity: -5, want: []Line{{ID: "b", Quantity: 1}}},
    }
    for _, tt := range tests {
        t.Run(tt.name, func(t *testing.T) {
            c := New()
            c.AddItem(Item{ID: "a"})
            c.AddItem(Item{ID: "b"})
            c.UpdateQuantity("a", tt.quantity)
            assert.Equal(t, tt.want, c.Snapshot().Items())
        })
    }
}

func TestUnknownIDsAreNoOps(t *testing.T) {
    c := New()
    c.AddItem(item("a", 3))
    before := c.Snapshot().Items()

    c.RemoveItem("missing")
    c.UpdateQuantity("missing", 7)
    c.UpdateQuantity("missing", 0)

    assert.Equal(t, before, c.Snapshot().Items())
}

func TestRemoveAndClear(t *testing.T) {
    c := New()
    c.AddItem(item("a", 3))
    c.AddItem(item("b", 4))
    c.RemoveItem("a")
    assert.Equal(t, []string{"b"}, ids(c.Snapshot().Items()))

    c.Clear()
    assert.Equal(t, 0, c.Snapshot().Len())
}

func TestTotalAndItemCount(t *testing.T) {
    lines := []Line{
        {ID: "a", Price: decimal.NewFromInt(10), Quantity: 2},
        {ID: "b", Price: decimal.NewFromInt(5), Quantity: 3},
    }
    assert.True(t, decimal.NewFromInt(35).Equal(Total(lines)))
    assert.Equal(t, 5, ItemCount(lines))
    assert.True(t, decimal.Zero.Equal(Total(nil)))
    assert.Equal(t, 0, ItemCount(nil))
}

func TestSubscribersSeeEveryMutation(t *testing.T) {
    c := New()
    var counts []int
    unsub := c.Subscribe(func(snap store.Snapshot[Line]) {
        counts = append(counts, ItemCount(snap.Items()))
    })
    defer unsub()

    c.AddItem(item("a", 1))
    c.AddItem(item("a", 1))
    c.UpdateQuantity("a", 5)
    c.Clear()

    assert.Equal(t, []int{0, 1, 2, 5, 0}, counts)
}

func ids(lines []Line) []string {
    out := make([]string, 0, len(lines))
    for _, l := range lines {
        out = append(out, l.ID)
    }
    return out
}
