package request

// PageQuery is the skip/limit window used by every list endpoint.
type PageQuery struct {
	Skip  int
	Limit int
}

func (p PageQuery) Offset() int {
	if p.Skip < 0 {
		return 0
	}
	return p.Skip
}
