package reminder

type SendDueOutput struct {
	Candidates int
	Sent       int
	Failed     int
}
