//go:build !linux

package adapter

func systemMemory() (uint64, uint64, error) {
	return 0, 0, errNoMemInfo
}
