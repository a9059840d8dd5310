package di_test

import (
	"errors"

	"github.com/sghaida/beanbox/di"
)

type Engine struct{ HP int }

type Player interface{ Play() string }

type Alarm interface{ Sound() string }

type Radio struct{}

func (*Radio) Play() string { return "fm" }

type Horn struct{}

func (*Horn) Sound() string { return "beep" }

type Siren struct{}

func (*Siren) Sound() string { return "wee-woo" }

type Car struct {
	Engine *Engine
	Player Player
	Alarm  Alarm
}

// Node has a slot of its own type to cover self matching.
type Node struct{ Next *Node }

// Ping and Pong reference each other.
type Ping struct{ Pong *Pong }
type Pong struct{ Ping *Ping }

type Broken struct{}

var errBrokenCtor = errors.New("engine block cracked")

func newEngine() *Engine { return &Engine{HP: 150} }

func engineDesc() di.Descriptor { return di.Component(newEngine) }

func radioDesc() di.Descriptor { return di.Component(func() *Radio { return &Radio{} }) }

func hornDesc() di.Descriptor { return di.Component(func() *Horn { return &Horn{} }) }

func sirenDesc() di.Descriptor { return di.Component(func() *Siren { return &Siren{} }) }

func carDesc() di.Descriptor {
	return di.Component(func() *Car { return &Car{} },
		di.Inject("engine", func(c *Car, e *Engine) { c.Engine = e }),
		di.Inject("player", func(c *Car, p Player) { c.Player = p }),
		di.Inject("alarm", func(c *Car, a Alarm) { c.Alarm = a }),
	)
}
