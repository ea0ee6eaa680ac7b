package service

import "github.com/nutriia/backend/internal/models"

// MenuTemplate is a predefined weekly menu a clinician can assign
// without involving the AI generator.
type MenuTemplate struct {
	Name        string             `json:"name"`
	Description string             `json:"description"`
	Meals       models.WeeklyMeals `json:"meals"`
}

func day(desayuno, comida, cena []string) models.DayMeals {
	return models.DayMeals{Desayuno: desayuno, Comida: comida, Cena: cena}
}

// MenuTemplates returns the built-in menu catalog.
func MenuTemplates() []MenuTemplate {
	return []MenuTemplate{
		{
			Name:        "Plan Mediterráneo",
			Description: "Rico en vegetales, pescado y grasas saludables",
			Meals: models.WeeklyMeals{
				"lunes": day(
					[]string{"Avena con frutas y nueces", "Yogurt griego", "Té verde"},
					[]string{"Ensalada mediterránea", "Salmón al horno", "Quinoa", "Agua natural"},
					[]string{"Sopa de verduras", "Pollo a la plancha", "Ensalada verde"},
				),
				"martes": day(
					[]string{"Huevos con espinacas", "Pan integral", "Jugo de naranja natural"},
					[]string{"Ensalada de garbanzos", "Pescado blanco", "Arroz integral", "Agua de limón"},
					[]string{"Crema de calabaza", "Pechuga de pavo", "Verduras al vapor"},
				),
				"miercoles": day(
					[]string{"Smoothie verde", "Tostadas integrales con aguacate", "Café"},
					[]string{"Ensalada griega", "Atún sellado", "Camote al horno", "Agua natural"},
					[]string{"Consomé de pollo", "Tortilla de verduras", "Ensalada"},
				),
				"jueves": day(
					[]string{"Yogurt con granola", "Frutas frescas", "Té de hierbas"},
					[]string{"Ensalada de espinacas", "Pollo al limón", "Lentejas", "Agua de Jamaica sin azúcar"},
					[]string{"Sopa de nopales", "Pescado a la plancha", "Verduras asadas"},
				),
				"viernes": day(
					[]string{"Omelette de claras", "Pan pita integral", "Jugo verde"},
					[]string{"Ensalada césar light", "Camarones al ajillo", "Arroz con vegetales", "Agua natural"},
					[]string{"Caldo de verduras", "Pollo en salsa verde", "Nopales"},
				),
				"sabado": day(
					[]string{"Pancakes de avena", "Frutas del bosque", "Café americano"},
					[]string{"Ensalada de atún", "Filete de pescado", "Pure de coliflor", "Agua de pepino"},
					[]string{"Sopa miso", "Pollo teriyaki", "Vegetales salteados"},
				),
				"domingo": day(
					[]string{"Huevos benedictinos light", "Ensalada de frutas", "Té chai"},
					[]string{"Ensalada caprese", "Lasaña de vegetales", "Pan integral", "Agua natural"},
					[]string{"Consomé", "Wrap de pollo", "Ensalada verde"},
				),
			},
		},
		{
			Name:        "Plan Bajo en Carbohidratos",
			Description: "Ideal para control glucémico estricto",
			Meals: models.WeeklyMeals{
				"lunes": day(
					[]string{"Huevos revueltos con queso", "Aguacate", "Café negro"},
					[]string{"Ensalada de col", "Carne asada", "Brócoli", "Agua natural"},
					[]string{"Sopa de col", "Pollo rostizado", "Espárragos"},
				),
				"martes": day(
					[]string{"Omelette de champiñones", "Espinacas salteadas", "Té verde"},
					[]string{"Ensalada verde", "Filete de res", "Coliflor al vapor", "Agua con limón"},
					[]string{"Caldo de pollo", "Salmón a la plancha", "Ensalada mixta"},
				),
				"miercoles": day(
					[]string{"Huevos pochados", "Jamón de pavo", "Café americano"},
					[]string{"Ensalada de espinacas", "Pechuga a la plancha", "Calabacitas", "Agua natural"},
					[]string{"Consomé", "Atún sellado", "Verduras asadas"},
				),
				"jueves": day(
					[]string{"Tortilla de claras", "Queso cottage", "Té de hierbas"},
					[]string{"Ensalada césar sin crutones", "Pollo al limón", "Ejotes", "Agua mineral"},
					[]string{"Sopa de verduras", "Pescado horneado", "Ensalada"},
				),
				"viernes": day(
					[]string{"Huevos fritos", "Tocino de pavo", "Café"},
					[]string{"Ensalada de pepino", "Camarones", "Zucchini", "Agua natural"},
					[]string{"Caldo de res", "Pollo en salsa de chile", "Nopales"},
				),
				"sabado": day(
					[]string{"Omelette de vegetales", "Aguacate", "Té verde"},
					[]string{"Ensalada griega", "Bistec", "Brócoli y coliflor", "Agua con pepino"},
					[]string{"Sopa de hongos", "Salmón", "Espinacas"},
				),
				"domingo": day(
					[]string{"Huevos benedictinos sin pan", "Jamón", "Café negro"},
					[]string{"Ensalada mixta", "Costillas al horno", "Vegetales asados", "Agua natural"},
					[]string{"Consomé de pollo", "Pechuga rellena", "Ensalada verde"},
				),
			},
		},
		{
			Name:        "Plan Equilibrado",
			Description: "Balance de todos los grupos alimenticios",
			Meals: models.WeeklyMeals{
				"lunes": day(
					[]string{"Pan integral con mermelada sin azúcar", "Queso fresco", "Leche descremada"},
					[]string{"Ensalada fresca", "Pollo al horno", "Arroz integral", "Frijoles", "Agua natural"},
					[]string{"Sopa de verduras", "Quesadilla integral", "Ensalada"},
				),
				"martes": day(
					[]string{"Cereal integral", "Plátano", "Yogurt natural"},
					[]string{"Ensalada de lechuga", "Pescado empapelado", "Papa al horno", "Agua de Jamaica sin azúcar"},
					[]string{"Crema de zanahoria", "Tacos de pollo", "Nopales"},
				),
				"miercoles": day(
					[]string{"Hotcakes integrales", "Miel de abeja", "Café con leche"},
					[]string{"Ensalada de col", "Carne de res magra", "Pasta integral", "Agua natural"},
					[]string{"Sopa de lentejas", "Pechuga asada", "Verduras"},
				),
				"jueves": day(
					[]string{"Molletes integrales", "Pico de gallo", "Jugo de naranja"},
					[]string{"Ensalada mixta", "Pollo en mole", "Arroz", "Tortillas", "Agua de limón"},
					[]string{"Caldo de pollo", "Tostadas de atún", "Ensalada"},
				),
				"viernes": day(
					[]string{"Chilaquiles horneados", "Frijoles refritos", "Café"},
					[]string{"Ensalada verde", "Filete de pescado", "Puré de papa", "Agua natural"},
					[]string{"Sopa de tortilla", "Sincronizadas de jamón", "Verduras"},
				),
				"sabado": day(
					[]string{"Sandwich integral", "Jamón de pavo", "Licuado de frutas"},
					[]string{"Ensalada cesar", "Pollo a la naranja", "Arroz con vegetales", "Agua de pepino"},
					[]string{"Pozole de pollo", "Tostadas", "Lechuga"},
				),
				"domingo": day(
					[]string{"Huevos a la mexicana", "Frijoles", "Tortillas", "Café"},
					[]string{"Ensalada fresca", "Mole con pollo", "Arroz", "Agua de horchata sin azúcar"},
					[]string{"Sopa de pasta", "Quesadillas", "Ensalada verde"},
				),
			},
		},
	}
}

// TemplateByName finds a template by its exact name.
func TemplateByName(name string) (MenuTemplate, bool) {
	for _, t := range MenuTemplates() {
		if t.Name == name {
			return t, true
		}
	}
	return MenuTemplate{}, false
}

// DefaultWeeklyMeals is the plan used when AI generation returns
// output that cannot be parsed.
func DefaultWeeklyMeals() models.WeeklyMeals {
	days := []string{"lunes", "martes", "miercoles", "jueves", "viernes", "sabado", "domingo"}
	meals := make(models.WeeklyMeals, len(days))
	for _, d := range days {
		meals[d] = models.DayMeals{
			Desayuno: []string{"Avena con frutas", "Yogurt", "Té"},
			Comida:   []string{"Ensalada", "Proteína", "Carbohidrato", "Agua"},
			Cena:     []string{"Sopa", "Proteína ligera", "Verduras"},
		}
	}
	return meals
}
