package domain

// ArticleFilter contains filtering/pagination parameters for article listing.
// Category and Level are combined with AND; nil means no filter.
type ArticleFilter struct {
	Category *Category
	Level    *Level
	Limit    int
	Offset   int
}

const (
	DefaultArticleLimit = 10
	MaxArticleLimit     = 100
)

// Normalize applies the default limit and clamps out-of-range values.
func (f *ArticleFilter) Normalize() {
	if f.Limit <= 0 {
		f.Limit = DefaultArticleLimit
	}
	if f.Limit > MaxArticleLimit {
		f.Limit = MaxArticleLimit
	}
	if f.Offset < 0 {
		f.Offset = 0
	}
}
