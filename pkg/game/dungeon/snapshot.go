package dungeon

import (
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Snapshot is the exported form of a map.
type Snapshot struct {
	Seed         string        `yaml:"seed,omitempty"`
	Ascension    bool          `yaml:"ascension"`
	Bottlenecks  []int         `yaml:"bottlenecks,flow,omitempty"`
	BurningElite *EliteInfo    `yaml:"burning_elite,omitempty"`
	Rows         []RowSnapshot `yaml:"rows"`
}

// RowSnapshot lists the reachable nodes of one row.
type RowSnapshot struct {
	Row   int            `yaml:"row"`
	Nodes []NodeSnapshot `yaml:"nodes"`
}

// NodeSnapshot is one reachable node.
type NodeSnapshot struct {
	Col  int   `yaml:"col"`
	Kind Kind  `yaml:"kind"`
	In   []int `yaml:"in,flow,omitempty"`
	Out  []int `yaml:"out,flow,omitempty"`
}

// Snapshot captures the reachable nodes, lowest row first. Each in-edge
// appears once per path that uses it.
func (m *Map) Snapshot() Snapshot {
	snap := Snapshot{Ascension: m.ascension}
	for row := 0; row < Height; row++ {
		if m.IsBottleneck(row) {
			snap.Bottlenecks = append(snap.Bottlenecks, row)
		}
		rs := RowSnapshot{Row: row}
		for col := 0; col < Width; col++ {
			node := m.skeleton.rows[row][col]
			if node.In.IsEmpty() && node.Out.IsEmpty() {
				continue
			}
			ns := NodeSnapshot{Col: col, Kind: m.kinds[row][col], Out: node.Out.Values()}
			for _, e := range node.In.Entries() {
				for i := 0; i < e.Count; i++ {
					ns.In = append(ns.In, e.Value)
				}
			}
			rs.Nodes = append(rs.Nodes, ns)
		}
		snap.Rows = append(snap.Rows, rs)
	}
	return snap
}

// YAML encodes the snapshot.
func (s Snapshot) YAML() ([]byte, error) {
	out, err := yaml.Marshal(s)
	if err != nil {
		return nil, errors.Wrap(err, "encode map snapshot")
	}
	return out, nil
}

// ParseSnapshot decodes a snapshot written by YAML.
func ParseSnapshot(data []byte) (Snapshot, error) {
	var s Snapshot
	if err := yaml.Unmarshal(data, &s); err != nil {
		return Snapshot{}, errors.Wrap(err, "decode map snapshot")
	}
	return s, nil
}
