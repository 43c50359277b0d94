// Package course describes the grading policy of a course: the category
// point table, letter-grade thresholds, schedule of exams and the header
// vocabulary used to normalize source exports.
//
// This package has no I/O. The course.yaml file is read by the
// internal/iocourse package and validated here.
package course

// Course is the complete grading policy of one course.
type Course struct {
	// Title is a human-readable course name.
	Title string `yaml:"title"`

	// Units is the number of course units (chapters) with weekly
	// assignments.
	Units int `yaml:"units"`

	// Weeks is the length of the course in weeks.
	Weeks int `yaml:"weeks"`

	// MaxPoints is the course total, excluding extra credit. When zero it
	// is computed from the category table.
	MaxPoints float64 `yaml:"max_points"`

	// ExamBlockPoints is the point-equivalent share given to all exam
	// categories together in the weighted score. When zero it equals the
	// sum of exam category maxima.
	ExamBlockPoints float64 `yaml:"exam_block_points"`

	// Categories is the category point table.
	Categories []Category `yaml:"categories"`

	// Letters are letter-grade thresholds. Validate sorts them in
	// descending order.
	Letters []Letter `yaml:"letters"`

	// Fallback is the letter for scores below every threshold.
	Fallback string `yaml:"fallback"`

	// Rules describe how headers of each source are normalized.
	Rules Rules `yaml:"rules"`

	// Warnings holds non-fatal validation warnings (not serialized).
	Warnings []ValidationWarning `yaml:"-"`
}

// Category is a group of assignments of the same kind.
type Category struct {
	// Name is used in derived column headers, for example "Qzs" gives
	// "TTL Qzs".
	Name string `yaml:"name"`

	// Tag is the substring of a normalized header that assigns the column
	// to this category.
	Tag string `yaml:"tag"`

	// Points is the maximum points of one instance.
	Points float64 `yaml:"points"`

	// Count is the number of instances during the course.
	Count int `yaml:"count"`

	// Exam categories are graded all-or-nothing in extrapolation and
	// share the exam block weight.
	Exam bool `yaml:"exam,omitempty"`

	// ExtraCredit categories are excluded from totals and weights.
	ExtraCredit bool `yaml:"extra_credit,omitempty"`

	// DueWeek is the week after which an exam counts as taken.
	DueWeek int `yaml:"due_week,omitempty"`
}

// Letter is one threshold of the letter-grade table.
type Letter struct {
	Letter string  `yaml:"letter"`
	Min    float64 `yaml:"min"`
}

// Rules keeps header vocabularies and ignore patterns per source.
type Rules struct {
	// Homework rules apply to the publisher homework export.
	Homework []Rule `yaml:"homework"`
	// LMS rules apply to the learning management system export.
	LMS []Rule `yaml:"lms"`
	// Ignore lists substrings of headers that are never scored.
	Ignore []string `yaml:"ignore"`
}

// Rule replaces From with To in a header. If Regex is true, From is a
// regular expression.
type Rule struct {
	From  string `yaml:"from"`
	To    string `yaml:"to"`
	Regex bool   `yaml:"regex,omitempty"`
}

// ValidationWarning represents a non-fatal configuration issue.
type ValidationWarning struct {
	Field   string
	Message string
}

// Max returns the maximum points of the category over the whole course.
func (c Category) Max() float64 {
	return c.Points * float64(c.Count)
}

// TotalName returns the header of the category total column.
func (c Category) TotalName() string {
	return "TTL " + c.Name
}

// Total returns the course maximum, excluding extra credit. It is the
// configured MaxPoints if set, otherwise the sum of the category table.
func (c *Course) Total() float64 {
	if c.MaxPoints > 0 {
		return c.MaxPoints
	}
	return c.CategoryTotal()
}

// CategoryTotal sums the maxima of all non-extra-credit categories.
func (c *Course) CategoryTotal() float64 {
	var res float64
	for _, cat := range c.Categories {
		if !cat.ExtraCredit {
			res += cat.Max()
		}
	}
	return res
}

// ExamBlock returns the point-equivalent share of exams in the weighted
// score.
func (c *Course) ExamBlock() float64 {
	if c.ExamBlockPoints > 0 {
		return c.ExamBlockPoints
	}
	var res float64
	for _, cat := range c.Categories {
		if cat.Exam && !cat.ExtraCredit {
			res += cat.Max()
		}
	}
	return res
}

// Category finds a category by name.
func (c *Course) Category(name string) (Category, bool) {
	for _, cat := range c.Categories {
		if cat.Name == name {
			return cat, true
		}
	}
	return Category{}, false
}
