package world

// Pos is a block position in the world. Y is the vertical axis.
type Pos struct {
	X, Y, Z int
}

func (p Pos) Up() Pos    { return Pos{p.X, p.Y + 1, p.Z} }
func (p Pos) Down() Pos  { return Pos{p.X, p.Y - 1, p.Z} }
func (p Pos) North() Pos { return Pos{p.X, p.Y, p.Z - 1} }
func (p Pos) South() Pos { return Pos{p.X, p.Y, p.Z + 1} }
func (p Pos) West() Pos  { return Pos{p.X - 1, p.Y, p.Z} }
func (p Pos) East() Pos  { return Pos{p.X + 1, p.Y, p.Z} }
