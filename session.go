package calc

// Session is the state of a calculator between key presses: the equation
// being typed, the angle mode, the inverse-function toggle, the previous
// answer and the history of solved equations. A Session is not safe to use
// concurrently.
type Session struct {
	eq      *Equation
	hist    History
	ans     float64
	err     error
	opts    []SolveOption
	degrees bool
	inverse bool
	// solved is set after a successful Evaluate until the next edit.
	solved bool
}

// NewSession creates a session in degrees mode. opts are used for every
// evaluation.
func NewSession(opts ...SolveOption) *Session {
	return &Session{eq: New(), degrees: true, opts: opts}
}

// Equation returns a copy of the equation being typed.
func (s *Session) Equation() *Equation {
	return s.eq.Clone()
}

// Render renders the equation being typed.
func (s *Session) Render() []Span {
	return s.eq.Render()
}

// Ans returns the result of the last successful evaluation, initially 0.
func (s *Session) Ans() float64 {
	return s.ans
}

// SetAns sets the value used for Ans.
func (s *Session) SetAns(v float64) {
	s.ans = v
}

// Err returns the error from the last evaluation if the equation has not been
// edited since it failed.
func (s *Session) Err() error {
	return s.err
}

// History returns the session's history.
func (s *Session) History() *History {
	return &s.hist
}

// Degrees returns whether trigonometric functions use degrees.
func (s *Session) Degrees() bool {
	return s.degrees
}

// ToggleDegrees switches between degrees and radians.
func (s *Session) ToggleDegrees() {
	s.degrees = !s.degrees
}

// Inverse returns whether Press maps functions to their inverses.
func (s *Session) Inverse() bool {
	return s.inverse
}

// ToggleInverse switches Press between functions and their inverses.
func (s *Session) ToggleInverse() {
	s.inverse = !s.inverse
}

// edit prepares for a key that changes the equation. After a successful
// evaluation, an operator continues from the answer; anything else starts
// over.
func (s *Session) edit(k Kind) {
	s.err = nil
	if !s.solved {
		return
	}
	s.solved = false
	switch k {
	case Add, Subtract, Multiply, Divide, Power, Factorial, Percent:
		s.eq.TryPush(Tok(Ans))
	}
}

// Push types an item into the equation. The result is whether the equation
// accepted it.
func (s *Session) Push(it Item) bool {
	s.edit(it.Kind)
	return s.eq.TryPush(it)
}

// Press types the key for k. When the inverse toggle is on, trigonometric
// functions become their inverses, Ln types e^, Log types 10^, Sqrt squares
// and Power becomes Nroot.
func (s *Session) Press(k Kind) bool {
	if s.inverse {
		switch k {
		case Sin:
			k = Asin
		case Cos:
			k = Acos
		case Tan:
			k = Atan
		case Ln:
			return s.ExpE()
		case Log:
			return s.TenPow()
		case Sqrt:
			return s.Square()
		case Power:
			k = Nroot
		}
	}
	return s.Push(Tok(k))
}

// Square types ^2. The 2 is only typed if the Power is accepted.
func (s *Session) Square() bool {
	if !s.Push(Tok(Power)) {
		return false
	}
	return s.Push(Num("2"))
}

// ExpE types e^.
func (s *Session) ExpE() bool {
	s.Push(Tok(E))
	return s.Push(Tok(Power))
}

// TenPow types 10^, multiplying by it if it follows a value.
func (s *Session) TenPow() bool {
	s.edit(Number)
	if s.eq.lastComplete() {
		s.eq.TryPush(Tok(Multiply))
	}
	s.eq.TryPush(Num("10"))
	return s.eq.TryPush(Tok(Power))
}

// Random types a random literal. The caller generates v.
func (s *Session) Random(v float64) bool {
	return s.Push(Random(v))
}

// Backspace removes the last key from the equation.
func (s *Session) Backspace() {
	s.err = nil
	s.solved = false
	s.eq.Backspace()
}

// Clear empties the equation.
func (s *Session) Clear() {
	s.err = nil
	s.solved = false
	s.eq.Clear()
}

// Evaluate solves the equation. On success, the equation and its result are
// added to the history, the result becomes Ans, and the equation is cleared.
// On failure, the equation is kept for editing and Err returns the error.
// Evaluating again right after a success returns Ans.
func (s *Session) Evaluate() (float64, error) {
	if s.solved && s.eq.IsEmpty() {
		return s.ans, nil
	}
	r, err := Solve(s.eq, s.degrees, s.ans, s.opts...)
	if err != nil {
		s.err = err
		return 0, err
	}
	s.hist.Add(s.eq, r)
	s.ans = r
	s.eq = New()
	s.err = nil
	s.solved = true
	return r, nil
}
