package constants

const (

	// CourtWidth is the logical width of the playing field
	CourtWidth int = 800
	// CourtHeight is the logical height of the playing field
	CourtHeight int = 600
	// CourtCenterX splits the court into the left and right halves
	CourtCenterX float64 = 400.0
	// CourtBottom is the lowest y the ball edge may reach before bouncing
	CourtBottom float64 = 595.0
	// CourtTop is the highest y the ball edge may reach before bouncing
	CourtTop float64 = 0.0

	// LeftGoalX is the x below which the ball scores for the right player
	LeftGoalX float64 = 25.0
	// RightGoalX is the x above which the ball scores for the left player
	RightGoalX float64 = 775.0

	// PaddleHalfHeight is half of the paddle's vertical extent
	PaddleHalfHeight float64 = 50.0
	// PaddleWidth is the drawn width of a paddle
	PaddleWidth float64 = 25.0
	// PaddleMinY is the lowest y a paddle can be moved to
	PaddleMinY float64 = 50.0
	// PaddleMaxY is the highest y a paddle can be moved to
	PaddleMaxY float64 = 550.0
	// PaddleStep is how far a paddle moves in one tick
	PaddleStep float64 = 1.0
	// PaddleStartingY is the y both paddles start at
	PaddleStartingY float64 = 300.0
	// LeftPaddleX is the fixed x of the AI paddle
	LeftPaddleX float64 = 25.0
	// RightPaddleX is the fixed x of the human paddle
	RightPaddleX float64 = 750.0
	// LeftPaddlePlaneX is the x the ball's leading edge must cross to hit the left paddle
	LeftPaddlePlaneX float64 = 50.0
	// RightPaddlePlaneX is the x the ball's leading edge must cross to hit the right paddle
	RightPaddlePlaneX float64 = 750.0

	// BallHalfSize is half of the ball's width and height
	BallHalfSize float64 = 5.0
	// BallStartingX is the x a new ball is placed at
	BallStartingX float64 = 395.0
	// BallStartingY is the y a new ball is placed at
	BallStartingY float64 = 295.0
	// BallStartingXSpeed is the horizontal speed of a new ball
	BallStartingXSpeed float64 = 1.0
	// BallSpeedUp scales the horizontal speed on every paddle hit
	BallSpeedUp float64 = 1.05
	// ReflectionDivisor turns the ball/paddle offset into a yspeed change
	ReflectionDivisor float64 = 100.0

	// MaxSessionNameLength is the longest accepted session name
	MaxSessionNameLength int = 32
)
