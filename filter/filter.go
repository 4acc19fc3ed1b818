// Package filter provides expression-based filtering of Unsplash photos
// using the expr language.
//
// Expressions evaluate against photo properties (Width, Height, Likes,
// Description, Username, CreatedAt, ...) plus a set of helper functions:
//
//	likes > 100 && isLandscape()
//	contains(Description, "coffee") && daysSince(CreatedAt) < 365
//	byUser("ansel") || aspectRatio() > 1.5
package filter

import (
	"strings"
	"time"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"

	"github.com/splashctl/splashctl/unsplash"
)

// Filter is a compiled photo filter. Filters are immutable and safe for
// concurrent use.
type Filter struct {
	expression string
	program    *vm.Program
}

// Compile compiles an expression into a Filter.
func Compile(expression string) (*Filter, error) {
	expression = strings.TrimSpace(expression)
	if expression == "" {
		return nil, &CompilationError{
			Expression: expression,
			Reason:     "empty expression",
		}
	}

	// Compile with the static helper environment for validation; photo
	// properties are only known at evaluation time.
	program, err := expr.Compile(expression,
		expr.Env(helperFunctions()),
		expr.AllowUndefinedVariables(),
		expr.AsBool(),
	)
	if err != nil {
		return nil, &CompilationError{
			Expression: expression,
			Reason:     "failed to compile expression",
			Err:        err,
		}
	}

	return &Filter{expression: expression, program: program}, nil
}

// Expression returns the original expression.
func (f *Filter) Expression() string {
	return f.expression
}

// Match evaluates the filter against a photo. Photos whose evaluation fails
// are treated as non-matching.
func (f *Filter) Match(photo unsplash.Photo) bool {
	result, err := expr.Run(f.program, runtimeEnvironment(photo))
	if err != nil {
		return false
	}
	// AsBool() at compile time guarantees a bool result.
	return result.(bool)
}

// Apply returns the photos matching the filter, preserving order.
func Apply(f *Filter, photos []unsplash.Photo) []unsplash.Photo {
	var matched []unsplash.Photo
	for _, photo := range photos {
		if f.Match(photo) {
			matched = append(matched, photo)
		}
	}
	return matched
}

// helperFunctions creates the static helper functions available in every
// expression.
func helperFunctions() map[string]any {
	env := make(map[string]any, 16)
	addHelperFunctions(env)
	return env
}

func addHelperFunctions(env map[string]any) {
	// Date helpers
	env["daysSince"] = func(t time.Time) int {
		return int(time.Since(t).Hours() / 24)
	}
	env["daysAgo"] = func(days int) time.Time {
		return time.Now().AddDate(0, 0, -days)
	}
	env["monthsAgo"] = func(months int) time.Time {
		return time.Now().AddDate(0, -months, 0)
	}
	env["yearsAgo"] = func(years int) time.Time {
		return time.Now().AddDate(-years, 0, 0)
	}
	env["parseDate"] = func(dateStr string) time.Time {
		t, _ := time.Parse("2006-01-02", dateStr)
		return t
	}
	// String helpers
	env["contains"] = func(str, substr string) bool {
		return strings.Contains(strings.ToLower(str), strings.ToLower(substr))
	}
	env["startsWith"] = func(str, prefix string) bool {
		return strings.HasPrefix(strings.ToLower(str), strings.ToLower(prefix))
	}
	env["endsWith"] = func(str, suffix string) bool {
		return strings.HasSuffix(strings.ToLower(str), strings.ToLower(suffix))
	}
	env["lower"] = strings.ToLower
	env["upper"] = strings.ToUpper
	// Current time
	env["now"] = time.Now
}

// runtimeEnvironment creates the evaluation environment for one photo.
func runtimeEnvironment(photo unsplash.Photo) map[string]any {
	env := make(map[string]any, 32)

	addHelperFunctions(env)

	env["Photo"] = photo

	// Photo-specific helpers using closures
	env["byUser"] = func(username string) bool {
		return strings.EqualFold(photo.User.Username, username)
	}
	env["aspectRatio"] = func() float64 {
		if photo.Height == 0 {
			return 0
		}
		return float64(photo.Width) / float64(photo.Height)
	}
	env["isLandscape"] = func() bool {
		return photo.Width > photo.Height
	}
	env["isPortrait"] = func() bool {
		return photo.Height > photo.Width
	}
	env["inCollection"] = func(title string) bool {
		for _, c := range photo.CurrentUserCollections {
			if strings.EqualFold(c.Title, title) {
				return true
			}
		}
		return false
	}

	// Direct photo properties for convenience
	env["ID"] = photo.ID
	env["Width"] = photo.Width
	env["Height"] = photo.Height
	env["Color"] = photo.Color
	env["Likes"] = photo.Likes
	env["LikedByUser"] = photo.LikedByUser
	env["Description"] = photo.Description
	env["CreatedAt"] = photo.CreatedAt
	env["UpdatedAt"] = photo.UpdatedAt
	env["Username"] = photo.User.Username
	env["Name"] = photo.User.Name

	return env
}
