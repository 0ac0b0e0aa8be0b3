package gazetteer

// municipality pairs a town name with its subregion. Declaration order is
// the table's canonical order and is preserved by Municipalities().
type municipality struct {
	Name   string
	Region Region
}

var municipalities = []municipality{
	// Valle de Aburrá
	{"Medellín", RegionValleDeAburra},
	{"Bello", RegionValleDeAburra},
	{"Itagüí", RegionValleDeAburra},
	{"Envigado", RegionValleDeAburra},
	{"Sabaneta", RegionValleDeAburra},
	{"La Estrella", RegionValleDeAburra},
	{"Caldas", RegionValleDeAburra},
	{"Copacabana", RegionValleDeAburra},
	{"Girardota", RegionValleDeAburra},
	{"Barbosa", RegionValleDeAburra},

	// Oriente
	{"Rionegro", RegionOriente},
	{"Marinilla", RegionOriente},
	{"La Ceja", RegionOriente},
	{"El Retiro", RegionOriente},
	{"Guarne", RegionOriente},
	{"El Carmen de Viboral", RegionOriente},
	{"El Santuario", RegionOriente},
	{"El Peñol", RegionOriente},
	{"Guatapé", RegionOriente},
	{"San Rafael", RegionOriente},
	{"San Carlos", RegionOriente},
	{"Granada", RegionOriente},
	{"Cocorná", RegionOriente},
	{"San Luis", RegionOriente},
	{"San Francisco", RegionOriente},
	{"Sonsón", RegionOriente},
	{"Abejorral", RegionOriente},
	{"Argelia", RegionOriente},
	{"Nariño", RegionOriente},
	{"La Unión", RegionOriente},
	{"Alejandría", RegionOriente},
	{"Concepción", RegionOriente},
	{"San Vicente", RegionOriente},

	// Occidente
	{"Santa Fe de Antioquia", RegionOccidente},
	{"San Jerónimo", RegionOccidente},
	{"Sopetrán", RegionOccidente},
	{"Olaya", RegionOccidente},
	{"Liborina", RegionOccidente},
	{"Sabanalarga", RegionOccidente},
	{"Buriticá", RegionOccidente},
	{"Giraldo", RegionOccidente},
	{"Cañasgordas", RegionOccidente},
	{"Frontino", RegionOccidente},
	{"Abriaquí", RegionOccidente},
	{"Dabeiba", RegionOccidente},
	{"Uramita", RegionOccidente},
	{"Peque", RegionOccidente},
	{"Caicedo", RegionOccidente},
	{"Anzá", RegionOccidente},
	{"Ebéjico", RegionOccidente},
	{"Heliconia", RegionOccidente},
	{"Armenia", RegionOccidente},

	// Norte
	{"Santa Rosa de Osos", RegionNorte},
	{"Yarumal", RegionNorte},
	{"Donmatías", RegionNorte},
	{"Entrerríos", RegionNorte},
	{"San Pedro de los Milagros", RegionNorte},
	{"Belmira", RegionNorte},
	{"San José de la Montaña", RegionNorte},
	{"San Andrés de Cuerquia", RegionNorte},
	{"Toledo", RegionNorte},
	{"Ituango", RegionNorte},
	{"Briceño", RegionNorte},
	{"Valdivia", RegionNorte},
	{"Angostura", RegionNorte},
	{"Campamento", RegionNorte},
	{"Guadalupe", RegionNorte},
	{"Gómez Plata", RegionNorte},
	{"Carolina del Príncipe", RegionNorte},

	// Nordeste
	{"Amalfi", RegionNordeste},
	{"Anorí", RegionNordeste},
	{"Cisneros", RegionNordeste},
	{"Remedios", RegionNordeste},
	{"Segovia", RegionNordeste},
	{"Vegachí", RegionNordeste},
	{"Yalí", RegionNordeste},
	{"Yolombó", RegionNordeste},
	{"San Roque", RegionNordeste},
	{"Santo Domingo", RegionNordeste},

	// Suroeste
	{"Jardín", RegionSuroeste},
	{"Jericó", RegionSuroeste},
	{"Andes", RegionSuroeste},
	{"Támesis", RegionSuroeste},
	{"Urrao", RegionSuroeste},
	{"Fredonia", RegionSuroeste},
	{"Amagá", RegionSuroeste},
	{"Venecia", RegionSuroeste},
	{"Titiribí", RegionSuroeste},
	{"Concordia", RegionSuroeste},
	{"Salgar", RegionSuroeste},
	{"Ciudad Bolívar", RegionSuroeste},
	{"Betania", RegionSuroeste},
	{"Betulia", RegionSuroeste},
	{"Hispania", RegionSuroeste},
	{"Pueblorrico", RegionSuroeste},
	{"Tarso", RegionSuroeste},
	{"Valparaíso", RegionSuroeste},
	{"La Pintada", RegionSuroeste},
	{"Santa Bárbara", RegionSuroeste},
	{"Caramanta", RegionSuroeste},
	{"Montebello", RegionSuroeste},
	{"Angelópolis", RegionSuroeste},

	// Bajo Cauca
	{"Caucasia", RegionBajoCauca},
	{"Cáceres", RegionBajoCauca},
	{"Tarazá", RegionBajoCauca},
	{"El Bagre", RegionBajoCauca},
	{"Nechí", RegionBajoCauca},
	{"Zaragoza", RegionBajoCauca},

	// Magdalena Medio
	{"Puerto Berrío", RegionMagdalenaMedio},
	{"Puerto Nare", RegionMagdalenaMedio},
	{"Puerto Triunfo", RegionMagdalenaMedio},
	{"Maceo", RegionMagdalenaMedio},
	{"Caracolí", RegionMagdalenaMedio},
	{"Yondó", RegionMagdalenaMedio},

	// Urabá
	{"Turbo", RegionUraba},
	{"Apartadó", RegionUraba},
	{"Carepa", RegionUraba},
	{"Chigorodó", RegionUraba},
	{"Mutatá", RegionUraba},
	{"Necoclí", RegionUraba},
	{"Arboletes", RegionUraba},
	{"San Juan de Urabá", RegionUraba},
	{"San Pedro de Urabá", RegionUraba},
	{"Murindó", RegionUraba},
	{"Vigía del Fuerte", RegionUraba},
}

// Municipalities returns the town names in declaration order.
func Municipalities() []string {
	names := make([]string, len(municipalities))
	for i, m := range municipalities {
		names[i] = m.Name
	}
	return names
}

// RegionOf returns the subregion for a municipality name matched on its
// normalized form, or RegionUnclassified when unknown.
func RegionOf(name string) Region {
	key := normalizeKey(name)
	for _, m := range municipalities {
		if normalizeKey(m.Name) == key {
			return m.Region
		}
	}
	return RegionUnclassified
}
