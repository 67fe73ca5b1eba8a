package specification

import (
	"strings"

	"github.com/narwhalmedia/catalog/internal/catalog/domain"
)

// VideoSpecification selects videos
type VideoSpecification = Specification[*domain.Video]

// LaunchedBetween matches videos launched in [from, to]
func LaunchedBetween(from, to int) VideoSpecification {
	return Func[*domain.Video](func(v *domain.Video) bool {
		return v.YearLaunched() >= from && v.YearLaunched() <= to
	})
}

// InGenre matches videos holding genre
func InGenre(genre *domain.Genre) VideoSpecification {
	return Func[*domain.Video](func(v *domain.Video) bool {
		return v.HasGenre(genre)
	})
}

// InCategory matches videos holding category
func InCategory(category *domain.Category) VideoSpecification {
	return Func[*domain.Video](func(v *domain.Video) bool {
		for _, c := range v.Categories() {
			if c == category {
				return true
			}
		}
		return false
	})
}

// Featuring matches videos with member in their cast
func Featuring(member *domain.CastMember) VideoSpecification {
	return Func[*domain.Video](func(v *domain.Video) bool {
		return v.HasCastMember(member)
	})
}

// IsOpened matches videos whose opened flag is set to true
func IsOpened() VideoSpecification {
	return Func[*domain.Video](func(v *domain.Video) bool {
		return v.IsOpened()
	})
}

// TitleContains matches titles containing term, ignoring case
func TitleContains(term string) VideoSpecification {
	term = strings.ToLower(term)
	return Func[*domain.Video](func(v *domain.Video) bool {
		return strings.Contains(strings.ToLower(v.Title()), term)
	})
}

// HasFileOfKind matches videos with at least one file of kind
func HasFileOfKind(kind domain.VideoFileKind) VideoSpecification {
	return Func[*domain.Video](func(v *domain.Video) bool {
		for _, f := range v.VideoFiles() {
			if f.Kind() == kind {
				return true
			}
		}
		return false
	})
}
