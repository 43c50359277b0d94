package course

// Default returns the policy of the modeled six-week course: weekly
// quizzes, labs, discussions, homework and extra credit, two midterms
// and a cumulative exam, 502 points in total.
func Default() *Course {
	res := &Course{
		Title:           "CHEM100",
		Units:           6,
		Weeks:           6,
		MaxPoints:       502,
		ExamBlockPoints: 400,
		Categories: []Category{
			{Name: "Qzs", Tag: "Qz", Points: 5, Count: 6},
			{Name: "Labs", Tag: "Lab", Points: 5, Count: 6},
			{Name: "Discs", Tag: "Disc", Points: 2, Count: 6},
			{Name: "HMWKs", Tag: "HMWK", Points: 5, Count: 6},
			{Name: "MidT #1", Tag: "MidT #1", Points: 150, Count: 1,
				Exam: true, DueWeek: 2},
			{Name: "MidT #2", Tag: "MidT #2", Points: 150, Count: 1,
				Exam: true, DueWeek: 4},
			{Name: "Cumulative", Tag: "Cumulative", Points: 100, Count: 1,
				Exam: true, DueWeek: 7},
			{Name: "XCs", Tag: "XC", Points: 2, Count: 6, ExtraCredit: true},
		},
		Letters: []Letter{
			{Letter: "A", Min: 0.90},
			{Letter: "B", Min: 0.80},
			{Letter: "C", Min: 0.70},
			{Letter: "D", Min: 0.60},
		},
		Fallback: "F",
		Rules: Rules{
			Homework: []Rule{
				{From: `\s*\(\d+(?:\.\d+)?\)`, To: "", Regex: true},
				{From: "Chapter", To: "CH"},
				{From: ": Extra Credit", To: " XC"},
				{From: ": Required", To: " HMWK"},
			},
			LMS: []Rule{
				{From: "Canvas Quiz", To: "Qz"},
				{From: "Chapter", To: "CH"},
				{From: "Laboratory", To: "Lab"},
				{From: "Midterm", To: "MidT"},
				{From: "Short Answer", To: "SAQs"},
				{From: "Multiple Choice", To: "MCQs"},
				{From: "Discussion Week ", To: "Disc #"},
			},
			Ignore: []string{"E-BOOK", "Not Graded"},
		},
	}
	return res
}
