package raster

var rainbowBands = [7][3]int{
	{255, 0, 0},     // red
	{255, 130, 0},   // orange
	{255, 255, 0},   // yellow
	{0, 255, 0},     // green
	{0, 0, 255},     // blue
	{75, 0, 130},    // indigo
	{238, 130, 238}, // violet
}

// Rainbow returns a dim x dim square of seven vertical color bands.
func Rainbow(dim int) (*Image, error) {
	if dim <= 0 {
		return nil, Invalid("rainbow dimension %d", dim)
	}

	bd, err := NewBuilder(dim, dim)
	if err != nil {
		return nil, err
	}

	for y := 0; y < dim; y++ {
		for x := 0; x < dim; x++ {
			band := len(rainbowBands) - 1
			for k := 1; k < len(rainbowBands); k++ {
				if x < dim*k/7 {
					band = k - 1
					break
				}
			}
			c := rainbowBands[band]
			bd.Set(x, y, c[0], c[1], c[2])
		}
	}

	return bd.Build(), nil
}

// Checkerboard returns a dim x dim board with squares per row, starting
// with a black square in the top-left corner.
func Checkerboard(dim, squares int) (*Image, error) {
	if dim <= 0 || squares <= 0 {
		return nil, Invalid("checkerboard %d/%d", dim, squares)
	}

	size := dim / squares
	if size == 0 {
		return nil, Invalid("checkerboard of %d squares does not fit %d pixels", squares, dim)
	}

	bd, err := NewBuilder(dim, dim)
	if err != nil {
		return nil, err
	}

	for y := 0; y < dim; y++ {
		for x := 0; x < dim; x++ {
			v := 0
			if (x/size)%2 != (y/size)%2 {
				v = 255
			}
			bd.Set(x, y, v, v, v)
		}
	}

	return bd.Build(), nil
}
