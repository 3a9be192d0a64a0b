package consent

// Pair is a single key/value entry supplied by the host.
type Pair struct {
	Key   string
	Value string
}

// Dict is the ordered key/value list the host hands over for cookies and settings. Nothing
// stops a key from appearing more than once.
type Dict []Pair

// Map collapses the list into a lookup map. When a key repeats, the last entry wins.
func (d Dict) Map() map[string]string {
	m := make(map[string]string, len(d))
	for _, p := range d {
		m[p.Key] = p.Value
	}
	return m
}

// DictFromMap builds a Dict from a map. Order is unspecified.
func DictFromMap(m map[string]string) Dict {
	d := make(Dict, 0, len(m))
	for k, v := range m {
		d = append(d, Pair{Key: k, Value: v})
	}
	return d
}
