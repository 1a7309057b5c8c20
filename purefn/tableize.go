package purefn

func TableizeI1O1[I1, O1 any](
	pureFn func(I1) O1,
	maxTableSize uint32,
) func(I1) O1 {
	tableized := tableize(
		func(args ...any) O1 {
			return pureFn(arg[I1](args[0]))
		},
		maxTableSize,
	)
	return func(i1 I1) O1 {
		return tableized(i1)
	}
}

func TableizeI2O1[I1, I2, O1 any](
	pureFn func(I1, I2) O1,
	maxTableSize uint32,
) func(I1, I2) O1 {
	tableized := tableize(
		func(args ...any) O1 {
			return pureFn(arg[I1](args[0]), arg[I2](args[1]))
		},
		maxTableSize,
	)
	return func(i1 I1, i2 I2) O1 {
		return tableized(i1, i2)
	}
}

func TableizeI3O1[I1, I2, I3, O1 any](
	pureFn func(I1, I2, I3) O1,
	maxTableSize uint32,
) func(I1, I2, I3) O1 {
	tableized := tableize(
		func(args ...any) O1 {
			return pureFn(arg[I1](args[0]), arg[I2](args[1]), arg[I3](args[2]))
		},
		maxTableSize,
	)
	return func(i1 I1, i2 I2, i3 I3) O1 {
		return tableized(i1, i2, i3)
	}
}

func TableizeI4O1[I1, I2, I3, I4, O1 any](
	pureFn func(I1, I2, I3, I4) O1,
	maxTableSize uint32,
) func(I1, I2, I3, I4) O1 {
	tableized := tableize(
		func(args ...any) O1 {
			return pureFn(arg[I1](args[0]), arg[I2](args[1]), arg[I3](args[2]), arg[I4](args[3]))
		},
		maxTableSize,
	)
	return func(i1 I1, i2 I2, i3 I3, i4 I4) O1 {
		return tableized(i1, i2, i3, i4)
	}
}

// arg recovers a typed argument; a nil interface or pointer argument
// comes back as the zero value of T.
func arg[T any](a any) T {
	v, _ := a.(T)
	return v
}

func tableize[O any](
	pureFn func(...any) O,
	maxTableSize uint32,
) func(...any) O {
	memo := NewTrie[O](maxTableSize)
	return func(args ...any) O {
		v, ok := memo.Load(args)
		if !ok {
			v = pureFn(args...)
			memo.Store(args, v)
		}
		return v
	}
}
