package promotions

// ListFilters describe the supported exact-match filter knobs for the list
// endpoint. Filters are mutually exclusive; when several are supplied only the
// highest-precedence one is honored (title, then promo code, then site-wide).
type ListFilters struct {
	Title      *string
	PromoCode  *string
	IsSiteWide *bool
}

// Empty reports whether no filter is set.
func (f ListFilters) Empty() bool {
	return f.Title == nil && f.PromoCode == nil && f.IsSiteWide == nil
}
