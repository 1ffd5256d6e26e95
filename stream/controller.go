package stream

import (
	"errors"
	"log"
	"math"
	"time"

	"github.com/matt-g-everett/ledcolormap/util"
)

// Controller cycles through animations, cross-fading from one to the next.
type Controller struct {
	animations   []Animation
	current      int
	next         int
	animationMs  int64
	lastSwitchMs int64
	transition   []float64
	step         int
}

// NewController creates an instance of a Controller. Each animation plays
// for animationTime; the cross-fade lasts transitionTime at frameRate and
// follows curve.
func NewController(animations []Animation, runtimeMs int64, frameRate float64,
	animationTime time.Duration, transitionTime time.Duration,
	curve func(float64) float64) (*Controller, error) {

	if len(animations) == 0 {
		return nil, errors.New("controller needs at least one animation")
	}

	c := new(Controller)
	c.animations = animations
	c.current = 0
	c.next = -1
	c.animationMs = animationTime.Milliseconds()
	c.lastSwitchMs = runtimeMs

	frames := int(math.Ceil(frameRate * transitionTime.Seconds()))
	if frames < 1 {
		frames = 1
	}
	c.transition = util.GenerateLut(frames, curve)

	return c, nil
}

// Current returns the index of the animation being shown, or being faded
// out of during a transition.
func (c *Controller) Current() int {
	return c.current
}

// CalculateFrame creates a new Frame instance.
func (c *Controller) CalculateFrame(runtimeMs int64) *Frame {
	if c.next < 0 && len(c.animations) > 1 && runtimeMs-c.lastSwitchMs >= c.animationMs {
		c.next = (c.current + 1) % len(c.animations)
		c.step = 0
		log.Printf("Transition from animation %d to %d", c.current, c.next)
	}

	if c.next < 0 {
		return c.animations[c.current].CalculateFrame(runtimeMs)
	}

	f1 := c.animations[c.current].CalculateFrame(runtimeMs)
	f2 := c.animations[c.next].CalculateFrame(runtimeMs)
	f := f1.InterpolateFrame(f2, c.transition[c.step])
	c.step++

	if c.step >= len(c.transition) {
		c.current = c.next
		c.next = -1
		c.lastSwitchMs = runtimeMs
	}

	return f
}

// NewStripController scrolls each strip along the LED strip in turn, as
// configured by sc.
func NewStripController(strips []Strip, sc StreamConfig, runtimeMs int64) (*Controller, error) {
	curve, err := util.EaseFunc(sc.TransitionEase)
	if err != nil {
		return nil, err
	}

	animations := make([]Animation, 0, len(strips))
	for _, s := range strips {
		animations = append(animations, NewTrail(s.ColorMap, sc.Pixels, sc.Speed, runtimeMs))
	}

	return NewController(animations, runtimeMs, sc.FrameRate,
		secs(sc.AnimationSecs), secs(sc.TransitionSecs), curve)
}

func secs(s float64) time.Duration {
	return time.Duration(s * float64(time.Second))
}
