package main

import "time"

/***** INTERFACE *******************************/

// Clock is the source of the current time. The display reads it on every
// refresh; tests and --at use a StoppedClock.
type Clock interface {
	Now() time.Time
}

/***** STRUCT **********************************/

type realClock struct{}

/***********************************************/

// A clock whose time never moves.
type StoppedClock time.Time

/***** FUNCTION ********************************/

func Real() Clock { return realClock{} }

/***********************************************/

func (realClock) Now() time.Time { return time.Now() }

/***********************************************/

func (c StoppedClock) Now() time.Time { return time.Time(c) }

/***********************************************/
