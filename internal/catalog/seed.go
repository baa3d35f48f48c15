package catalog

// FallbackHeroImage is shown when the hero collection is empty.
const FallbackHeroImage = "https://images.unsplash.com/photo-1544620347-c4fd4a3d5957?auto=format&fit=crop&q=80&w=1600"

// SeedHeroImages returns the initial banner set.
func SeedHeroImages() []string {
	return []string{
		"https://images.unsplash.com/photo-1544620347-c4fd4a3d5957?auto=format&fit=crop&q=80&w=1600",
		"https://images.unsplash.com/photo-1574629810360-7efbbe195018?auto=format&fit=crop&q=80&w=1600",
		"https://images.unsplash.com/photo-1556694795-b6423d3d5b28?auto=format&fit=crop&q=80&w=1600",
	}
}

// SeedDrivers returns the initial drivers. Each call returns fresh slices.
func SeedDrivers() []Driver {
	return []Driver{
		{
			ID:            "1",
			Name:          "Carlos Oliveira",
			Email:         "carlos.oliveira@connectvan.com.br",
			Photo:         "https://picsum.photos/seed/driver1/400/400",
			VehicleType:   "Van Escolar (20 Lugares)",
			Neighborhoods: []string{"Itaim Bibi", "Moema", "Vila Nova Conceição"},
			Schools:       []string{"Colégio Mobile", "Escola Lourenço Castanho", "Pueri Domus"},
			Description:   "Mais de 15 anos de experiência no transporte escolar. Veículo com ar-condicionado e monitores treinados para total segurança dos alunos.",
			WhatsApp:      "5511999999999",
		},
		{
			ID:            "2",
			Name:          "Ana Paula Souza",
			Email:         "ana.paula@connectvan.com.br",
			Photo:         "https://picsum.photos/seed/driver2/400/400",
			VehicleType:   "Micro-ônibus",
			Neighborhoods: []string{"Santana", "Casa Verde", "Tucuruvi"},
			Schools:       []string{"Colégio Jardim São Paulo", "Salesiano Santa Teresinha"},
			Description:   "Especializada em transporte para colégios bilíngues. Pontualidade britânica e um ambiente acolhedor para as crianças começarem bem o dia.",
			WhatsApp:      "5511988888888",
		},
		{
			ID:            "3",
			Name:          "Ricardo Mendes",
			Email:         "ricardo.mendes@connectvan.com.br",
			Photo:         "https://picsum.photos/seed/driver3/400/400",
			VehicleType:   "Van Executiva",
			Neighborhoods: []string{"Pinheiros", "Butantã", "Lapa"},
			Schools:       []string{"Colégio Santa Cruz", "Escola Vera Cruz", "St. Nicholas School"},
			Description:   "Focado em conforto premium. Atendo principalmente a região de Pinheiros e Butantã com rotas otimizadas para menor tempo no trânsito.",
			WhatsApp:      "5511977777777",
		},
	}
}

// SeedPartners returns the initial partners.
func SeedPartners() []Partner {
	return []Partner{
		{
			ID:          "1",
			Name:        "Borracharia do Pneu",
			Logo:        "https://picsum.photos/seed/pneu/200/200",
			Category:    string(CategoryTireShop),
			Description: "Atendimento rápido para vans e ônibus escolares com condições especiais.",
			WhatsApp:    "5511999991111",
		},
		{
			ID:          "2",
			Name:        "Papelaria Estudar",
			Logo:        "https://picsum.photos/seed/paper/200/200",
			Category:    string(CategoryStationery),
			Description: "Material escolar completo com descontos exclusivos para pais e motoristas da rede.",
			WhatsApp:    "5511999992222",
		},
		{
			ID:          "3",
			Name:        "Oficina Mecânica Precision",
			Logo:        "https://picsum.photos/seed/mech/200/200",
			Category:    string(CategoryMechanic),
			Description: "Especialistas em manutenção preventiva e corretiva para veículos de transporte escolar.",
			WhatsApp:    "5511999993333",
		},
	}
}

// Seed returns the full initial state.
func Seed() Snapshot {
	return Snapshot{
		Drivers:    SeedDrivers(),
		Partners:   SeedPartners(),
		HeroImages: SeedHeroImages(),
	}
}
