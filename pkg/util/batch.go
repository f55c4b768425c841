package util

func InPlaceFilter[T any](s *[]T, p func(T) bool) {
	i := 0
	for _, e := range *s {
		if p(e) {
			(*s)[i] = e
			i++
		}
	}
	*s = (*s)[:i]
}

// Chunk splits s into consecutive windows of at most size elements
func Chunk[T any](s []T, size int) [][]T {
	if size < 1 {
		size = 1
	}

	var chunks [][]T
	for start := 0; start < len(s); start += size {
		end := min(start+size, len(s))
		chunks = append(chunks, s[start:end])
	}

	return chunks
}
