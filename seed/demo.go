package seed

import (
	"eventdesk/account"
	"eventdesk/authority"
	"eventdesk/domain"
)

const (
	DemoOrganizationID = 1
	DemoProjectID      = 1
)

// Demo is the data the dashboard starts with when no seed file is given:
// three users covering the role combinations and one fully populated event.
func Demo() *Seed {
	return &Seed{
		Organization: account.Organization{ID: DemoOrganizationID, Name: "Eventos Ecuador"},
		Users: []User{
			{User: account.User{ID: 1, Name: "ana", Email: "ana@event.com", Nickname: "Ana"}, OrgRole: string(authority.OrgRoleOwner)},
			{User: account.User{ID: 2, Name: "carlos", Email: "carlos@event.com", Nickname: "Carlos"}, OrgRole: string(authority.OrgRoleAdmin)},
			{User: account.User{ID: 3, Name: "luis", Email: "luis@event.com", Nickname: "Luis"}, OrgRole: string(authority.OrgRoleMember)},
		},
		Projects: []Project{demoProject()},
	}
}

func demoProject() Project {
	return Project{
		ID:   DemoProjectID,
		Name: "Cumbre Tributaria Ecuador",
		Config: domain.EventConfig{
			EventName:        "Cumbre Tributaria Ecuador",
			EventDate:        "2026-06-15",
			TargetAttendees:  2000,
			SponsorsTarget:   15,
			TotalBudget:      120000,
			UniversityTarget: 5,
			StudentTarget:    1500,
			SponsorTargets:   domain.SponsorTargets{Diamond: 2, Gold: 5, Silver: 8, Bronze: 10},
		},
		Members: []Member{
			{UserID: 2, Role: string(authority.EventRoleDirector)},
			{UserID: 3, Role: string(authority.EventRoleCoordinator)},
		},
		Tasks:            demoTasks(),
		BudgetItems:      demoBudget(),
		Speakers:         demoSpeakers(),
		Sponsors:         demoSponsors(),
		Universities:     demoUniversities(),
		Campaigns:        demoCampaigns(),
		MarketingMetrics: demoMetrics(),
		TeamMembers:      demoTeam(),
		Objectives:       demoObjectives(),
	}
}

func task(id int, category, title string, status domain.TaskStatus, priority domain.TaskPriority, date string) domain.Task {
	return domain.Task{ID: id, Category: category, Title: title, Status: status, Priority: priority, Date: date}
}

func demoTasks() []domain.Task {
	return []domain.Task{
		task(1, "Estrategia", "Objetivos SMART definidos y documentados", domain.TaskStatusDone, domain.TaskPriorityHigh, "2026-02-15"),
		task(2, "Estrategia", "KPIs establecidos con metas numéricas", domain.TaskStatusDone, domain.TaskPriorityHigh, "2026-02-20"),
		task(3, "Estrategia", "Presupuesto maestro aprobado con contingencia", domain.TaskStatusDone, domain.TaskPriorityCritical, "2026-02-25"),
		task(4, "Estrategia", "Cronograma de planificación con milestones", domain.TaskStatusDone, domain.TaskPriorityHigh, "2026-02-28"),

		task(5, "Ponentes", "Jorge Ron confirmado como ponente principal", domain.TaskStatusDone, domain.TaskPriorityCritical, "2026-03-05"),
		task(6, "Ponentes", "Agenda de 2 días diseñada con tracks paralelos", domain.TaskStatusPending, domain.TaskPriorityHigh, "2026-04-05"),
		task(7, "Ponentes", "Contactar speakers bureaus internacionales", domain.TaskStatusInProgress, domain.TaskPriorityHigh, "2026-03-15"),

		task(8, "Marketing", "Identidad visual del evento creada", domain.TaskStatusDone, domain.TaskPriorityHigh, "2026-03-01"),
		task(9, "Marketing", "Landing page activa con registro", domain.TaskStatusInProgress, domain.TaskPriorityCritical, "2026-03-10"),
		task(10, "Marketing", "Plan de marketing en 3 fases", domain.TaskStatusPending, domain.TaskPriorityHigh, "2026-04-01"),

		task(11, "Alianzas", "Lista de universidades target contactadas", domain.TaskStatusInProgress, domain.TaskPriorityHigh, "2026-03-20"),
		task(12, "Alianzas", "Convenio con el Colegio de Contadores", domain.TaskStatusPending, domain.TaskPriorityCritical, "2026-04-15"),

		task(13, "Auspicios", "Paquetes de auspicio diseñados por niveles", domain.TaskStatusDone, domain.TaskPriorityHigh, "2026-03-10"),
		task(14, "Auspicios", "Brochure comercial profesional listo", domain.TaskStatusInProgress, domain.TaskPriorityHigh, "2026-03-15"),

		task(15, "Logística", "Contrato del Centro de Convenciones firmado", domain.TaskStatusDone, domain.TaskPriorityCritical, "2026-03-15"),
		task(16, "Logística", "Proveedores AV y Catering contratados", domain.TaskStatusPending, domain.TaskPriorityHigh, "2026-04-20"),

		task(17, "Tecnología", "Plataforma de ticketing seleccionada", domain.TaskStatusDone, domain.TaskPriorityMedium, "2026-03-20"),

		task(18, "Legal", "Plan de contingencia elaborado", domain.TaskStatusPending, domain.TaskPriorityCritical, "2026-04-20"),
		task(19, "Legal", "Permisos municipales obtenidos", domain.TaskStatusPending, domain.TaskPriorityHigh, "2026-05-15"),

		task(20, "Experiencia", "Kit de bienvenida/swag bag diseñado", domain.TaskStatusPending, domain.TaskPriorityMedium, "2026-05-10"),

		task(21, "Post-Evento", "Encuesta de satisfacción diseñada", domain.TaskStatusPending, domain.TaskPriorityMedium, "2026-06-05"),
	}
}

func demoBudget() []domain.BudgetItem {
	return []domain.BudgetItem{
		{ID: 1, Category: "Venue y Espacios", Allocated: 30000, Spent: 5000, Notes: "Alquiler Centro de Convenciones"},
		{ID: 2, Category: "Ponentes (Honorarios/Viáticos)", Allocated: 35000, Notes: "Incluye internacionales y Jorge Ron"},
		{ID: 3, Category: "Producción y AV", Allocated: 25000, Notes: "Pantallas LED, Sonido, Streaming"},
		{ID: 4, Category: "Marketing y Publicidad", Allocated: 15000, Spent: 2000, Notes: "Ads, PR, Impresos"},
		{ID: 5, Category: "Catering", Allocated: 20000, Notes: "Coffee breaks y almuerzos (2 días)"},
		{ID: 6, Category: "Tecnología", Allocated: 5000, Notes: "App, Ticketing, Wi-Fi"},
		{ID: 7, Category: "Merchandising/Swag", Allocated: 8000, Notes: "Kits de bienvenida"},
		{ID: 8, Category: "Personal y Seguridad", Allocated: 5000, Notes: "Staff, seguridad privada, limpieza"},
		{ID: 9, Category: "Permisos y Seguros", Allocated: 2000, Notes: "Municipales y Responsabilidad Civil"},
		{ID: 10, Category: "Contingencia (10%)", Allocated: 15000, Notes: "Fondo de emergencia"},
	}
}

func demoSpeakers() []domain.Speaker {
	return []domain.Speaker{
		{ID: 1, Name: "Jorge Ron", Role: "Keynote Principal", Topic: "Reforma Tributaria 2026", Status: domain.SpeakerStatusConfirmed,
			Type: domain.SpeakerTypeNational, Image: "https://picsum.photos/seed/jorge/200"},
		{ID: 2, Name: "Experto Internacional IA", Role: "Keynote Tech", Topic: "IA en Finanzas", Status: domain.SpeakerStatusContacted,
			Type: domain.SpeakerTypeInternational, Image: "https://picsum.photos/seed/ia/200"},
		{ID: 3, Name: "Presidente Colegio Contadores", Role: "Panelista", Topic: "Futuro de la Profesión", Status: domain.SpeakerStatusPending,
			Type: domain.SpeakerTypeNational, Image: "https://picsum.photos/seed/presi/200"},
	}
}

func demoSponsors() []domain.Sponsor {
	return []domain.Sponsor{
		{ID: 1, Name: "Banco del Pacífico", Level: domain.SponsorLevelDiamond, Amount: 15000, Status: domain.SponsorStatusNegotiation},
		{ID: 2, Name: "Software Contable X", Level: domain.SponsorLevelGold, Amount: 8000, Status: domain.SponsorStatusProspect},
		{ID: 3, Name: "Universidad Ecotec", Level: domain.SponsorLevelSilver, Amount: 4000, Status: domain.SponsorStatusConfirmed},
	}
}

func demoUniversities() []domain.University {
	return []domain.University{
		{ID: 1, Name: "ESPOL", Status: domain.UniversityStatusSigned, Students: 150, Contact: "Decano Facultad Economía"},
		{ID: 2, Name: "Universidad de Guayaquil", Status: domain.UniversityStatusNegotiation, Students: 300, Contact: "Director Carrera CPA"},
		{ID: 3, Name: "UEES", Status: domain.UniversityStatusContacted, Contact: "Coordinador Vinculación"},
		{ID: 4, Name: "Universidad Católica", Status: domain.UniversityStatusSigned, Students: 120, Contact: "Jefe de Carrera"},
		{ID: 5, Name: "UTEG", Status: domain.UniversityStatusPending, Contact: "Pendiente"},
	}
}

func demoCampaigns() []domain.Campaign {
	return []domain.Campaign{
		{ID: 1, Phase: "Fase 1: Expectativa", Dates: "Feb - Mar", Status: domain.CampaignStatusActive,
			Channels: []string{"Instagram", "Email", "PR"}, Progress: 45},
		{ID: 2, Phase: "Fase 2: Conversión", Dates: "Abr - May", Status: domain.CampaignStatusPending,
			Channels: []string{"Ads", "Webinars", "Visitas"}},
		{ID: 3, Phase: "Fase 3: Último Impulso", Dates: "Junio", Status: domain.CampaignStatusPending,
			Channels: []string{"SMS", "Remarketing"}},
	}
}

// lastUpdated is left empty and stamped with the load date
func demoMetrics() []domain.MarketingMetric {
	return []domain.MarketingMetric{
		{ID: 1, Name: "Alcance en Redes", Target: 50000, Unit: domain.MetricUnitNumber, Platform: domain.MetricPlatformInstagram},
		{ID: 2, Name: "Leads Landing Page", Target: 2000, Unit: domain.MetricUnitNumber, Platform: domain.MetricPlatformWebsite},
		{ID: 3, Name: "Tasa de Apertura Email", Target: 25, Unit: domain.MetricUnitPercent, Platform: domain.MetricPlatformEmail},
	}
}

func demoTeam() []domain.TeamMember {
	return []domain.TeamMember{
		{ID: 1, Role: "Director General", Description: "Supervisa todo, toma decisiones finales, relaciones institucionales de alto nivel."},
		{ID: 2, Role: "Coord. Logística", Description: "Gestión del venue, proveedores, montaje, transporte, catering, equipo AV."},
		{ID: 3, Role: "Dir. Marketing", Description: "Estrategia digital/offline, campañas, PR y medios."},
		{ID: 4, Role: "Coord. Ponentes", Description: "Contacto speakers, diseño de agenda, materiales."},
		{ID: 5, Role: "Coord. Comercial", Description: "Venta de paquetes de patrocinio, relación con auspiciantes."},
		{ID: 6, Role: "Coord. Alianzas", Description: "Relación con universidades, colegios profesionales y gremios."},
		{ID: 7, Role: "Coord. Experiencia", Description: "Registro, acreditación, kit de bienvenida, atención al público."},
		{ID: 8, Role: "Coord. Tecnología", Description: "Plataforma de ticketing, app, streaming, Wi-Fi."},
		{ID: 9, Role: "Coord. Legal", Description: "Permisos municipales, plan de contingencia, seguros."},
	}
}

func demoObjectives() []domain.Objective {
	return []domain.Objective{
		{ID: 1, Text: "Posicionar la cumbre como el evento tributario #1 de Ecuador", Status: domain.ObjectiveStatusDefined},
		{ID: 2, Text: "Alcanzar 1,500-2,000 asistentes (70% universitarios)", Status: domain.ObjectiveStatusDefined},
		{ID: 3, Text: "Generar 50 leads comerciales de alto valor", Status: domain.ObjectiveStatusPending},
		{ID: 4, Text: "Conseguir 10-15 auspiciantes", Status: domain.ObjectiveStatusDefined},
	}
}
