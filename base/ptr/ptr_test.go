package ptr

import (
	"testing"

	"github.com/stretchr/testify/suite"
)

type pointerSuite struct {
	suite.Suite
}

func TestPointerSuite(t *testing.T) {
	suite.Run(t, new(pointerSuite))
}

func (s *pointerSuite) TestPointer() {
	p1 := String(`0xabc`)
	p2 := Int(20)
	p3 := Int32(18)
	p4 := Int64(1050000000000000000)
	p5 := Float64(180.0)
	p6 := Bool(true)

	s.Equal(*p1, `0xabc`)
	s.Equal(*p2, int(20))
	s.Equal(*p3, int32(18))
	s.Equal(*p4, int64(1050000000000000000))
	s.Equal(*p5, float64(180.0))
	s.Equal(*p6, true)
}
