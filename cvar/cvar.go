// SPDX-License-Identifier: GPL-2.0-or-later

// Package cvar holds named runtime variables. The string value is the truth,
// the float is derived from it.
package cvar

import (
	"fmt"
	"log"
	"strconv"
)

var (
	cvarArray  []*Cvar
	cvarByName = make(map[string]*Cvar)
)

type CallbackFunc func(cv *Cvar)

type Cvar struct {
	callback CallbackFunc
	name     string
	// stringValue is the truth, value the derived one
	stringValue string
	value       float32
}

// All returns every registered variable, in registration order.
func All() []*Cvar {
	return cvarArray
}

func (cv *Cvar) SetCallback(cb CallbackFunc) {
	cv.callback = cb
}

func (cv *Cvar) SetByString(s string) {
	cv.stringValue = s
	pf, _ := strconv.ParseFloat(cv.stringValue, 32)
	cv.value = float32(pf)
	if cv.callback != nil {
		cv.callback(cv)
	}
}

func (cv *Cvar) String() string {
	return cv.stringValue
}

func (cv *Cvar) Name() string {
	return cv.name
}

func (cv *Cvar) Value() float32 {
	return cv.value
}

func (cv *Cvar) SetValue(value float32) {
	if float32(int(value)) == value {
		v := strconv.FormatInt(int64(value), 10)
		cv.SetByString(v)
	} else {
		v := strconv.FormatFloat(float64(value), 'f', -1, 32)
		cv.SetByString(v)
	}
}

func (cv *Cvar) Bool() bool {
	return cv.stringValue != "0"
}

func Get(name string) (*Cvar, bool) {
	cv, ok := cvarByName[name]
	return cv, ok
}

// Set assigns a value by name, e.g. from the command line. Unknown names are
// an error, variables are never created implicitly.
func Set(name, value string) error {
	cv, ok := cvarByName[name]
	if !ok {
		return fmt.Errorf("unknown variable %q", name)
	}
	cv.SetByString(value)
	return nil
}

func create(name, value string) *Cvar {
	cv := &Cvar{name: name}
	cv.SetByString(value)
	cvarArray = append(cvarArray, cv)
	cvarByName[name] = cv
	return cv
}

func Register(name, value string) (*Cvar, error) {
	if _, ok := cvarByName[name]; ok {
		return nil, fmt.Errorf("Can't register variable %s, already defined\n", name)
	}
	return create(name, value), nil
}

func MustRegister(n, v string) *Cvar {
	cv, err := Register(n, v)
	if err != nil {
		log.Panic(n)
	}
	return cv
}
