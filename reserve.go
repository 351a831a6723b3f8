package dynarray

// ReserveRequest carries a capacity for NewReserved. It exists so that
// "n elements" and "room for n elements" are different constructor calls.
type ReserveRequest struct {
	Capacity int
}

// Reserve returns a request for n slots of capacity.
//
//	a := dynarray.NewReserved[int](dynarray.Reserve(64))
func Reserve(n int) ReserveRequest {
	return ReserveRequest{Capacity: n}
}
