// Package mapper holds generic slice conversions shared by the DTO layers.
package mapper

// MapSlice applies mapFunc to each element. The result is never nil, so an
// empty input encodes as [] rather than null.
func MapSlice[T any, R any](items []T, mapFunc func(T) R) []R {
	result := make([]R, 0, len(items))
	for _, item := range items {
		result = append(result, mapFunc(item))
	}
	return result
}

// MapSliceSkipNil is MapSlice over pointers, dropping nil inputs and nil outputs.
func MapSliceSkipNil[T any, R any](items []*T, mapFunc func(*T) *R) []*R {
	result := make([]*R, 0, len(items))
	for _, item := range items {
		if item == nil {
			continue
		}
		if mapped := mapFunc(item); mapped != nil {
			result = append(result, mapped)
		}
	}
	return result
}
