package content

// Card is one titled item inside a section.
type Card struct {
	Icon        string `json:"icon"`
	Step        string `json:"step,omitempty"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

// Section is one block of the marketing page.
type Section struct {
	ID       string   `json:"id"`
	Heading  string   `json:"heading"`
	Subtitle string   `json:"subtitle,omitempty"`
	Lead     []string `json:"lead,omitempty"`
	Cards    []Card   `json:"cards,omitempty"`
	Note     string   `json:"note,omitempty"`
	Mission  string   `json:"mission,omitempty"`
}

// Hero is the landing banner block.
type Hero struct {
	Title   string   `json:"title"`
	Tagline string   `json:"tagline"`
	Lead    string   `json:"lead"`
	Buttons []string `json:"buttons"`
}

// Contacts is the footer contact block.
type Contacts struct {
	Heading string `json:"heading"`
	Phone   string `json:"phone"`
	Email   string `json:"email"`
	Address string `json:"address"`
}

// Page is the full marketing page content.
type Page struct {
	Hero     Hero      `json:"hero"`
	Sections []Section `json:"sections"`
	Contacts Contacts  `json:"contacts"`
}

// Sections returns the marketing copy. The text is fixed; only the
// documents section visibility is decided elsewhere, via site settings.
func Sections() Page {
	return Page{
		Hero: Hero{
			Title:   "Безопасность вашего бассейна под контролем",
			Tagline: "СООУ Sentag в России",
			Lead:    "Система оповещения опасности утопления производства компании «Sentag AB» — современное решение для обеспечения безопасности плавания.",
			Buttons: []string{"Запросить расчет", "Узнать больше"},
		},
		Sections: []Section{
			{
				ID:      "how-it-works",
				Heading: "Как работает система оповещения опасности утопления?",
				Cards: []Card{
					{Icon: "Watch", Step: "01", Title: "Браслет подает сигнал", Description: "Если посетитель бассейна находится продолжительное время на критической глубине, браслет подает сигнал"},
					{Icon: "Radio", Step: "02", Title: "Передача на сенсоры", Description: "Информация поступает на сенсоры, установленные в бассейне. Блок управления получает сигнал тревоги"},
					{Icon: "AlertTriangle", Step: "03", Title: "Тревожное оповещение", Description: "Тревожный сигнал отображается на дисплее настенного модуля, включаются световые и звуковые приборы оповещения"},
				},
				Note: "Продолжительность времени нахождения и глубина настраивается отдельно с учетом особенностей бассейнов и возрастной категории посетителей. Браслеты могут отличаться настройками и цветами.",
				Lead: []string{
					"Инновационная технология Sentag обеспечивает самую раннюю и точную сигнализацию об обнаружении опасности утопления с целью сокращения времени на спасение в случае инцидента. Технические решения, предлагаемые нашей компанией, сводят к нулю риски того что критическая ситуация останется незамеченной.",
				},
			},
			{
				ID:      "system",
				Heading: "Что вы получаете используя СООУ «Sentag»",
				Cards: []Card{
					{Icon: "ShieldCheck", Title: "Обеспечение безопасности людей", Description: "Защита посетителей на закрытой воде с помощью передовых технологий мониторинга"},
					{Icon: "Users", Title: "Оптимизация работы спасателей", Description: "Система помогает персоналу быстрее реагировать на критические ситуации"},
					{Icon: "Award", Title: "Повышение имиджа и репутации", Description: "Современные системы безопасности укрепляют доверие клиентов к вашему заведению"},
				},
			},
			{
				ID:      "advantages",
				Heading: "Преимущества СООУ Sentag",
				Cards: []Card{
					{Icon: "Wrench", Title: "Легкое обслуживание и монтаж", Description: "Простая установка и минимальные требования к обслуживанию системы"},
					{Icon: "FileCheck", Title: "Соответствует российскому ГОСТ", Description: "Полное соответствие требованиям и стандартам РФ"},
					{Icon: "CreditCard", Title: "Браслет как ключ или способ оплаты", Description: "Многофункциональность браслета для удобства посетителей"},
					{Icon: "Heart", Title: "Особое внимание к детям и пожилым", Description: "Настраиваемые параметры для разных возрастных групп"},
					{Icon: "Zap", Title: "Мгновенная реакция", Description: "Система реагирует на опасность в режиме реального времени"},
					{Icon: "Search", Title: "Функция \"Объект в бассейне\"", Description: "Обнаружение посторонних предметов в воде"},
					{Icon: "User", Title: "Индивидуальный контроль", Description: "Система контролирует каждого пользователя отдельно"},
					{Icon: "ShieldAlert", Title: "Защита от сбоев", Description: "Система не подвержена сбоям под воздействием внешних факторов"},
				},
			},
			{
				ID:      "about",
				Heading: "О компании",
				Lead: []string{
					"Компания «Меридиан» имеет эксклюзивное право на реализацию продукции шведских систем обнаружения опасности утопления производства «Sentag AB» в России. Мы сможем реализовать решения разных уровней сложности, начиная от маленьких частных бассейнов, до олимпийских объектов и аквапарков.",
					"Легко подберем оборудование с учетом особенностей вашего бассейна. Расскажем о работе системы, подберем оптимальные варианты для вашего объекта.",
					"«Меридиан» надёжный партнёр, который ответственно относится к принятым на себя обязательствам, что подтверждено многолетним опытом работы и довольными заказчиками. Наши системы позволяют сделать бассейны еще более безопасными, сохраняя жизни людей.",
				},
				Mission: "Бассейны должны быть безопасны!",
			},
			{
				ID:       "documents",
				Heading:  "Документы и сертификаты",
				Subtitle: "Полное соответствие требованиям ГОСТ и международным стандартам",
				Cards: []Card{
					{Icon: "FileCheck", Title: "Сертификат соответствия ГОСТ", Description: "Подтверждение соответствия требованиям РФ"},
					{Icon: "Award", Title: "Международные сертификаты", Description: "CE, ISO 9001 и другие стандарты качества"},
					{Icon: "FileText", Title: "Техническая документация", Description: "Инструкции по установке и эксплуатации"},
					{Icon: "ClipboardCheck", Title: "Тестовые отчёты", Description: "Результаты испытаний систем безопасности"},
					{Icon: "BookOpen", Title: "Руководства пользователя", Description: "Подробные инструкции для персонала"},
					{Icon: "Shield", Title: "Гарантийные документы", Description: "Условия гарантийного обслуживания"},
				},
			},
		},
		Contacts: Contacts{
			Heading: "Контакты",
			Phone:   "+7 (3452) 56-82-86",
			Email:   "info@meridian-t.ru",
			Address: "г. Тюмень, ул. 30 лет Победы, д. 60А, офис 302",
		},
	}
}
