package data

// nullByteMap is Drill's validity layout, one byte per slot with 0 marking
// a null.
type nullByteMap struct {
	byteMap []byte
}

func (n *nullByteMap) IsNull(index int) bool {
	return n.byteMap[index] == 0
}

func (n *nullByteMap) NullN() (count int) {
	for i := range n.byteMap {
		if n.IsNull(i) {
			count++
		}
	}
	return
}

func (n *nullByteMap) GetNullBytemap() []byte {
	return n.byteMap
}
