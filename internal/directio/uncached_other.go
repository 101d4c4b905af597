//go:build !linux && !darwin

package directio

const largeFileFlag = 0

func (*Handler) openUncached(_ string) (int, error) {
	return -1, ErrUncachedUnsupported
}
