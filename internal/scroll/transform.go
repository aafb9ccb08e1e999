package scroll

// Keyframes is a piecewise-linear map. In must be sorted ascending and have
// the same length as Out. Inputs outside the first/last breakpoint take the
// first/last output.
type Keyframes struct {
	In  []float64
	Out []float64
}

// Linear maps [in0, in1] onto [out0, out1].
func Linear(in0, in1, out0, out1 float64) Keyframes {
	return Keyframes{In: []float64{in0, in1}, Out: []float64{out0, out1}}
}

func (k Keyframes) At(x float64) float64 {
	n := len(k.In)
	if n == 0 || n != len(k.Out) {
		return 0
	}
	if x <= k.In[0] {
		return k.Out[0]
	}
	if x >= k.In[n-1] {
		return k.Out[n-1]
	}
	for i := 1; i < n; i++ {
		if x > k.In[i] {
			continue
		}
		x0, x1 := k.In[i-1], k.In[i]
		if x1 == x0 {
			return k.Out[i]
		}
		t := (x - x0) / (x1 - x0)
		return k.Out[i-1] + t*(k.Out[i]-k.Out[i-1])
	}
	return k.Out[n-1]
}

// Section transforms, all keyed on progress.
var (
	Header   = Linear(0, 1, -20, 20)
	Content  = Linear(0, 1, -50, 50)
	Envelope = Keyframes{
		In:  []float64{0, 0.25, 0.75, 1},
		Out: []float64{0, 1, 1, 0},
	}
)

// Frame is everything a parallax section needs to render one scroll position.
type Frame struct {
	Progress float64
	HeaderY  float64
	ContentY float64
	Opacity  float64
}

func Derive(progress float64) Frame {
	return Frame{
		Progress: progress,
		HeaderY:  Header.At(progress),
		ContentY: Content.At(progress),
		Opacity:  Envelope.At(progress),
	}
}

// Hero transforms are keyed on the absolute page scroll offset rather than on
// a reference element.
var (
	HeroTitleY    = Linear(0, 500, 0, -100)
	HeroSubtitleY = Linear(0, 500, 0, -200)
	HeroOpacity   = Linear(0, 300, 1, 0)
)

// HeroFrame holds the hero section's transforms.
type HeroFrame struct {
	TitleY    float64
	SubtitleY float64
	Opacity   float64
}

func PageTransform(scrollY float64) HeroFrame {
	return HeroFrame{
		TitleY:    HeroTitleY.At(scrollY),
		SubtitleY: HeroSubtitleY.At(scrollY),
		Opacity:   HeroOpacity.At(scrollY),
	}
}
