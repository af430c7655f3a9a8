package generic

func MapKeys[K comparable, V any](m map[K]V) []K {
	keys := make([]K, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}

	return keys
}

func MapCopy[K comparable, V any](src, dst map[K]V) {
	for k, v := range src {
		dst[k] = v
	}
}
