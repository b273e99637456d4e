package registry

type cityPair struct {
	a, b string
}

// DistanceTable - статическая таблица расстояний между городами, симметричная.
type DistanceTable struct {
	defaultKm float64
	localKm   float64
	routes    map[cityPair]float64
}

func NewDistanceTable(defaultKm, localKm float64) DistanceTable {
	return DistanceTable{
		defaultKm: defaultKm,
		localKm:   localKm,
		routes:    make(map[cityPair]float64),
	}
}

func (d DistanceTable) Set(from, to string, km float64) {
	d.routes[pairOf(from, to)] = km
}

// Distance возвращает расстояние в км. Один и тот же город - localKm,
// неизвестная пара - defaultKm.
func (d DistanceTable) Distance(from, to string) float64 {
	from, to = normalize(from), normalize(to)
	if from == to {
		return d.localKm
	}
	if km, ok := d.routes[pairOf(from, to)]; ok {
		return km
	}
	return d.defaultKm
}

func pairOf(from, to string) cityPair {
	from, to = normalize(from), normalize(to)
	if from > to {
		from, to = to, from
	}
	return cityPair{a: from, b: to}
}
