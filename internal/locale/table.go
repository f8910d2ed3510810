package locale

import "strings"

// Pair 后端值（英文 snake_case）与显示值（荷兰语）的一组映射
type Pair struct {
	Backend string
	Display string
}

// Table 固定的双向映射表
// - ToBackend: 未知显示值返回 Default；Default 为空时原样返回（透传表）
// - FromBackend: 未知后端值原样返回，保证未识别的值仍可显示（有损、宽松）
type Table struct {
	Name    string
	Default string

	pairs     []Pair
	toBackend map[string]string
	toDisplay map[string]string
}

// NewTable 创建映射表；pairs 的顺序即 Displays/Backends 的顺序
func NewTable(name, def string, pairs ...Pair) *Table {
	t := &Table{
		Name:      name,
		Default:   def,
		pairs:     pairs,
		toBackend: make(map[string]string, len(pairs)),
		toDisplay: make(map[string]string, len(pairs)),
	}
	for _, p := range pairs {
		t.toBackend[p.Display] = p.Backend
		t.toDisplay[p.Backend] = p.Display
	}
	return t
}

// ToBackend 显示值 -> 后端值
func (t *Table) ToBackend(display string) string {
	if v, ok := t.toBackend[display]; ok {
		return v
	}
	// 已经是后端值时保持不变，避免重复转换
	if _, ok := t.toDisplay[display]; ok {
		return display
	}
	if t.Default == "" {
		return display
	}
	return t.Default
}

// FromBackend 后端值 -> 显示值；未知值原样返回
func (t *Table) FromBackend(backend string) string {
	if v, ok := t.toDisplay[backend]; ok {
		return v
	}
	return backend
}

// IsBackend 是否为表中声明的后端值
func (t *Table) IsBackend(v string) bool {
	_, ok := t.toDisplay[v]
	return ok
}

// IsDisplay 是否为表中声明的显示值
func (t *Table) IsDisplay(v string) bool {
	_, ok := t.toBackend[v]
	return ok
}

// Pairs 返回声明的映射（副本）
func (t *Table) Pairs() []Pair {
	out := make([]Pair, len(t.pairs))
	copy(out, t.pairs)
	return out
}

// Displays 全部显示值
func (t *Table) Displays() []string {
	out := make([]string, 0, len(t.pairs))
	for _, p := range t.pairs {
		out = append(out, p.Display)
	}
	return out
}

// Backends 全部后端值
func (t *Table) Backends() []string {
	out := make([]string, 0, len(t.pairs))
	for _, p := range t.pairs {
		out = append(out, p.Backend)
	}
	return out
}

// lookupFold 大小写不敏感的查找，用于容忍后端大小写不一致
func (t *Table) lookupFold(v string) (Pair, bool) {
	for _, p := range t.pairs {
		if strings.EqualFold(p.Backend, v) || strings.EqualFold(p.Display, v) {
			return p, true
		}
	}
	return Pair{}, false
}
