package generate

var lastNames = []string{
	"Smith", "Johnson", "Williams", "Brown", "Jones", "Garcia", "Miller",
	"Davis", "Rodriguez", "Martinez", "Hernandez", "Lopez", "Gonzalez",
	"Wilson", "Anderson", "Thomas", "Taylor", "Moore", "Jackson", "Martin",
	"Lee", "Perez", "Thompson", "White", "Harris", "Sanchez", "Clark",
	"Ramirez", "Lewis", "Robinson", "Walker", "Young", "Allen", "King",
	"Wright", "Scott", "Torres", "Nguyen", "Hill", "Flores", "Green",
	"Adams", "Nelson", "Baker", "Hall", "Rivera", "Campbell", "Mitchell",
	"Carter", "Roberts", "O'Brien", "Kim", "Patel", "Chen", "Okafor",
}

var firstNames = []string{
	"James", "Mary", "Robert", "Patricia", "John", "Jennifer", "Michael",
	"Linda", "David", "Elizabeth", "William", "Barbara", "Richard", "Susan",
	"Joseph", "Jessica", "Thomas", "Sarah", "Charles", "Karen", "Daniel",
	"Lisa", "Matthew", "Nancy", "Anthony", "Betty", "Mark", "Sandra",
	"Donald", "Ashley", "Steven", "Emily", "Andrew", "Kimberly", "Paul",
	"Donna", "Joshua", "Michelle", "Kevin", "Carol", "Brian", "Amanda",
	"Ana", "Luis", "Wei", "Priya", "Chidi", "Sofia", "Mateo", "Aisha",
}

var programs = []string{
	"Biology BS", "Chemistry BS", "Nursing BSN", "Kinesiology BS",
	"Environmental Science BS", "Undeclared", "Pre-Pharmacy",
	"Biochemistry BS", "Public Health BS",
}
