package crawler

const (
	// AbstractFileName is the metadata file every simulation run directory carries.
	AbstractFileName = "abstract.txt"

	// ReportFileName is the consolidated report written into the input directory.
	ReportFileName = "metadata.txt"
)

// Keys recognized in an abstract file. Anything else is ignored.
const (
	keyNmax  = "Nmax"
	keyTheta = "theta"
	keyTDiv  = "tdiv"
	keyDT    = "dt"
)

var recognizedKeys = []string{keyNmax, keyTheta, keyTDiv, keyDT}
