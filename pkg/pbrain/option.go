package pbrain

import (
	"errors"
	"fmt"
	"strconv"
	"time"
)

type Option interface {
	OptionName() string
	String() string
	Set(s string) error
}

type BoolOption struct {
	Name  string
	Value *bool
}

func (opt *BoolOption) OptionName() string {
	return opt.Name
}

func (opt *BoolOption) String() string {
	return fmt.Sprintf("option %v type check default %v", opt.Name, *opt.Value)
}

func (opt *BoolOption) Set(s string) error {
	v, err := strconv.ParseBool(s)
	if err != nil {
		return err
	}
	*opt.Value = v
	return nil
}

type IntOption struct {
	Name  string
	Min   int
	Max   int
	Value *int
}

func (opt *IntOption) OptionName() string {
	return opt.Name
}

func (opt *IntOption) String() string {
	return fmt.Sprintf("option %v type spin default %v min %v max %v",
		opt.Name, *opt.Value, opt.Min, opt.Max)
}

func (opt *IntOption) Set(s string) error {
	v, err := strconv.Atoi(s)
	if err != nil {
		return err
	}
	if v < opt.Min || v > opt.Max {
		return errors.New("argument out of range")
	}
	*opt.Value = v
	return nil
}

// MillisecondsOption reads a duration given in milliseconds. Zero and negative values
// are ignored, since the manager uses them for "no limit".
type MillisecondsOption struct {
	Name  string
	Value *time.Duration
}

func (opt *MillisecondsOption) OptionName() string {
	return opt.Name
}

func (opt *MillisecondsOption) String() string {
	return fmt.Sprintf("option %v type spin default %v", opt.Name, opt.Value.Milliseconds())
}

func (opt *MillisecondsOption) Set(s string) error {
	v, err := strconv.Atoi(s)
	if err != nil {
		return err
	}
	if v > 0 {
		*opt.Value = time.Duration(v) * time.Millisecond
	}
	return nil
}
