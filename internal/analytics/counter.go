package analytics

import "sort"

// rankEntry is one row of a rank-ordered frequency list.
type rankEntry struct {
	Nombre   string `json:"nombre"`
	Cantidad int    `json:"cantidad"`
}

// counter counts string occurrences. Ranked views break count ties
// lexicographically on the key so every report is reproducible.
type counter map[string]int

func (c counter) add(key string) {
	c[key]++
}

func (c counter) total() int {
	n := 0
	for _, v := range c {
		n += v
	}
	return n
}

func (c counter) ranked() []rankEntry {
	entries := make([]rankEntry, 0, len(c))
	for k, v := range c {
		entries = append(entries, rankEntry{Nombre: k, Cantidad: v})
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Cantidad != entries[j].Cantidad {
			return entries[i].Cantidad > entries[j].Cantidad
		}
		return entries[i].Nombre < entries[j].Nombre
	})
	return entries
}

func (c counter) top(n int) []rankEntry {
	entries := c.ranked()
	if len(entries) > n {
		entries = entries[:n]
	}
	return entries
}

// mode returns the most frequent key, smallest key on ties.
func (c counter) mode() string {
	entries := c.ranked()
	if len(entries) == 0 {
		return ""
	}
	return entries[0].Nombre
}

// monthCount is one month's tally, kept in a slice so JSON preserves the
// chronological (or rank) order.
type monthCount struct {
	Mes      int `json:"mes"`
	Cantidad int `json:"cantidad"`
}

type monthCounter map[int]int

func (m monthCounter) add(month int) {
	m[month]++
}

// byMonth returns tallies in calendar order for months that occurred.
func (m monthCounter) byMonth() []monthCount {
	months := make([]int, 0, len(m))
	for k := range m {
		months = append(months, k)
	}
	sort.Ints(months)
	out := make([]monthCount, 0, len(months))
	for _, k := range months {
		out = append(out, monthCount{Mes: k, Cantidad: m[k]})
	}
	return out
}

// topMonths returns up to n month numbers ranked by count descending,
// earlier month first on ties.
func (m monthCounter) topMonths(n int) []int {
	return m.rankedMonths(n, func(a, b monthCount) bool {
		if a.Cantidad != b.Cantidad {
			return a.Cantidad > b.Cantidad
		}
		return a.Mes < b.Mes
	})
}

// bottomMonths returns up to n month numbers ranked by count ascending,
// earlier month first on ties.
func (m monthCounter) bottomMonths(n int) []int {
	return m.rankedMonths(n, func(a, b monthCount) bool {
		if a.Cantidad != b.Cantidad {
			return a.Cantidad < b.Cantidad
		}
		return a.Mes < b.Mes
	})
}

func (m monthCounter) rankedMonths(n int, less func(a, b monthCount) bool) []int {
	entries := make([]monthCount, 0, len(m))
	for k, v := range m {
		entries = append(entries, monthCount{Mes: k, Cantidad: v})
	}
	sort.Slice(entries, func(i, j int) bool { return less(entries[i], entries[j]) })
	if len(entries) > n {
		entries = entries[:n]
	}
	out := make([]int, 0, len(entries))
	for _, e := range entries {
		out = append(out, e.Mes)
	}
	return out
}
