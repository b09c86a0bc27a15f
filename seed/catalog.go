package seed

import "musicgraph/model"

// GenreKeys 初始流派
var GenreKeys = []string{"rock", "pop", "jazz", "classical", "electronic", "latin"}

func country(c string) *string { return &c }

// Artists 示例艺人
var Artists = []model.Artist{
	{Key: "a1", Name: "Luna Rivera", Country: country("PE"), Genres: model.StringSet{"latin", "pop"}},
	{Key: "a2", Name: "The Night Owls", Country: country("US"), Genres: model.StringSet{"rock"}},
	{Key: "a3", Name: "Blue Canvas Trio", Country: country("UK"), Genres: model.StringSet{"jazz"}},
	{Key: "a4", Name: "Synthline", Country: country("DE"), Genres: model.StringSet{"electronic"}},
	{Key: "a5", Name: "Orquesta Andina", Country: country("PE"), Genres: model.StringSet{"classical", "latin"}},
	{Key: "a6", Name: "Indigo Waves", Country: country("AR"), Genres: model.StringSet{"pop", "electronic"}},
	{Key: "a7", Name: "Cedro & Cuerdas", Country: country("PE"), Genres: model.StringSet{"classical"}},
	{Key: "a8", Name: "Ruta 34", Country: country("CL"), Genres: model.StringSet{"rock", "latin"}},
	{Key: "a9", Name: "Mar de Fondo", Country: country("UY"), Genres: model.StringSet{"rock", "latin"}},
	{Key: "a10", Name: "Solar Echoes", Country: country("MX"), Genres: model.StringSet{"electronic", "pop"}},
	{Key: "a11", Name: "Café Meridian", Country: country("CO"), Genres: model.StringSet{"jazz", "latin"}},
	{Key: "a12", Name: "Luz de Cámara", Country: country("ES"), Genres: model.StringSet{"pop"}},
	{Key: "a13", Name: "Cuarteto del Sur", Country: country("PE"), Genres: model.StringSet{"classical", "latin"}},
	{Key: "a14", Name: "Bosque Urbano", Country: country("BR"), Genres: model.StringSet{"rock", "pop"}},
	{Key: "a15", Name: "Línea de Fuego", Country: country("MX"), Genres: model.StringSet{"rock"}},
	{Key: "a16", Name: "Nube Rosa", Country: country("AR"), Genres: model.StringSet{"pop", "latin"}},
	{Key: "a17", Name: "Orbit Ensemble", Country: country("CA"), Genres: model.StringSet{"jazz", "electronic"}},
	{Key: "a18", Name: "Sierra Brava", Country: country("PE"), Genres: model.StringSet{"latin"}},
	{Key: "a19", Name: "Puente Gris", Country: country("CL"), Genres: model.StringSet{"rock", "jazz"}},
	{Key: "a20", Name: "Nocturna", Country: country("ES"), Genres: model.StringSet{"electronic"}},
	{Key: "a21", Name: "Bruma Quartet", Country: country("IT"), Genres: model.StringSet{"classical"}},
}

// Albums 示例专辑
var Albums = []model.Album{
	{Key: "al1", Title: "Amanecer", Year: 2021, ArtistKey: "a1"},
	{Key: "al2", Title: "Vértigo", Year: 2023, ArtistKey: "a1"},
	{Key: "al3", Title: "Moonlight Run", Year: 2020, ArtistKey: "a2"},
	{Key: "al4", Title: "Static Roads", Year: 2022, ArtistKey: "a2"},
	{Key: "al5", Title: "Azure Notes", Year: 2019, ArtistKey: "a3"},
	{Key: "al6", Title: "Late Café", Year: 2021, ArtistKey: "a3"},
	{Key: "al7", Title: "Neon Fields", Year: 2022, ArtistKey: "a4"},
	{Key: "al8", Title: "Pulse Driver", Year: 2023, ArtistKey: "a4"},
	{Key: "al9", Title: "Suite Andina", Year: 2018, ArtistKey: "a5"},
	{Key: "al10", Title: "Cuerdas del Sur", Year: 2022, ArtistKey: "a7"},
	{Key: "al11", Title: "Río Eléctrico", Year: 2024, ArtistKey: "a6"},
	{Key: "al12", Title: "Kilómetro 34", Year: 2021, ArtistKey: "a8"},
	{Key: "al13", Title: "Luz Marina", Year: 2020, ArtistKey: "a9"},
	{Key: "al14", Title: "Cruce de Vías", Year: 2022, ArtistKey: "a9"},
	{Key: "al15", Title: "Orbits", Year: 2021, ArtistKey: "a10"},
	{Key: "al16", Title: "Neón Solar", Year: 2024, ArtistKey: "a10"},
	{Key: "al17", Title: "Medianoche en Bogotá", Year: 2019, ArtistKey: "a11"},
	{Key: "al18", Title: "Café Largo", Year: 2022, ArtistKey: "a11"},
	{Key: "al19", Title: "Plano Secuencia", Year: 2023, ArtistKey: "a12"},
	{Key: "al20", Title: "Flash", Year: 2021, ArtistKey: "a12"},
	{Key: "al21", Title: "Suite del Sur", Year: 2020, ArtistKey: "a13"},
	{Key: "al22", Title: "Andes Chamber", Year: 2023, ArtistKey: "a13"},
	{Key: "al23", Title: "Ciudad Verde", Year: 2022, ArtistKey: "a14"},
	{Key: "al24", Title: "Horizonte", Year: 2021, ArtistKey: "a16"},
	{Key: "al25", Title: "Noches Claras", Year: 2023, ArtistKey: "a20"},
}

func track(key, title string, duration int, albumKey, artistKey string, genres []string, plays int64) model.Track {
	return model.Track{
		Key:       key,
		Title:     title,
		Duration:  duration,
		AlbumKey:  albumKey,
		ArtistKey: artistKey,
		Genres:    genres,
		Plays:     plays,
	}
}

// Tracks 示例曲目，按专辑内顺序排列（trackNumber 按插入顺序递增）
var Tracks = []model.Track{
	track("t1", "Intro Amanecer", 120, "al1", "a1", []string{"latin", "pop"}, 351),
	track("t2", "Sol de Octubre", 214, "al1", "a1", []string{"latin", "pop"}, 980),
	track("t3", "Vértigo I", 205, "al2", "a1", []string{"pop"}, 640),
	track("t4", "Vértigo II", 230, "al2", "a1", []string{"pop"}, 712),
	track("t5", "The Run", 198, "al3", "a2", []string{"rock"}, 845),
	track("t6", "Night Curve", 242, "al3", "a2", []string{"rock"}, 523),
	track("t7", "Static Road", 210, "al4", "a2", []string{"rock"}, 667),
	track("t8", "Echo Signs", 225, "al4", "a2", []string{"rock"}, 590),
	track("t9", "Azure Theme", 256, "al5", "a3", []string{"jazz"}, 432),
	track("t10", "Smoky Room", 201, "al5", "a3", []string{"jazz"}, 350),
	track("t11", "Closing Time", 220, "al6", "a3", []string{"jazz"}, 501),
	track("t12", "Blue Streets", 235, "al6", "a3", []string{"jazz"}, 488),
	track("t13", "Neon Gate", 210, "al7", "a4", []string{"electronic"}, 910),
	track("t14", "Field Trip", 199, "al7", "a4", []string{"electronic"}, 880),
	track("t15", "Driver 1", 205, "al8", "a4", []string{"electronic"}, 720),
	track("t16", "Driver 2", 218, "al8", "a4", []string{"electronic"}, 612),
	track("t17", "Obertura", 180, "al9", "a5", []string{"classical", "latin"}, 300),
	track("t18", "Cueca en Re", 210, "al9", "a5", []string{"classical", "latin"}, 420),
	track("t19", "Cuerdas I", 240, "al10", "a7", []string{"classical"}, 520),
	track("t20", "Cuerdas II", 260, "al10", "a7", []string{"classical"}, 510),
	track("t21", "Río I", 200, "al11", "a6", []string{"pop", "electronic"}, 610),
	track("t22", "Río II", 212, "al11", "a6", []string{"pop", "electronic"}, 745),
	track("t23", "Ruta", 190, "al12", "a8", []string{"rock", "latin"}, 430),
	track("t24", "Kilómetro", 205, "al12", "a8", []string{"rock", "latin"}, 455),
	track("t25", "Brisa", 185, "al1", "a1", []string{"latin"}, 260),
	track("t26", "Medianoche", 210, "al3", "a2", []string{"rock"}, 470),
	track("t27", "Café Tarde", 215, "al6", "a3", []string{"jazz"}, 390),
	track("t28", "Neon Sky", 205, "al7", "a4", []string{"electronic"}, 510),
	track("t29", "Suite I", 240, "al9", "a5", []string{"classical"}, 330),
	track("t30", "Suite II", 255, "al9", "a5", []string{"classical"}, 345),
	track("t31", "Arpegio", 222, "al10", "a7", []string{"classical"}, 380),
	track("t32", "Marea", 210, "al11", "a6", []string{"pop"}, 560),
	track("t33", "Asfalto", 208, "al12", "a8", []string{"rock"}, 495),
	track("t34", "Norte", 206, "al12", "a8", []string{"rock", "latin"}, 505),
	track("t35", "Luciérnagas", 204, "al2", "a1", []string{"pop"}, 455),
	track("t36", "Sombras", 202, "al4", "a2", []string{"rock"}, 420),
	track("t37", "Turno Noche", 213, "al3", "a2", []string{"rock"}, 399),
	track("t38", "Chispa", 198, "al8", "a4", []string{"electronic"}, 488),
	track("t39", "Zamba Luz", 232, "al9", "a5", []string{"latin"}, 310),
	track("t40", "Cuerda Final", 245, "al10", "a7", []string{"classical"}, 390),

	track("t41", "Costa Norte", 210, "al13", "a9", []string{"rock", "latin"}, 410),
	track("t42", "Luz Marina", 200, "al13", "a9", []string{"latin"}, 380),
	track("t43", "Mareas Lentas", 230, "al13", "a9", []string{"rock", "latin"}, 395),
	track("t44", "Puerto Gris", 215, "al13", "a9", []string{"rock"}, 360),
	track("t45", "Calle del Mar", 205, "al13", "a9", []string{"latin"}, 402),

	track("t46", "Cruce de Vías", 220, "al14", "a9", []string{"rock"}, 440),
	track("t47", "Túnel Sur", 208, "al14", "a9", []string{"rock", "latin"}, 370),
	track("t48", "Estación Noche", 212, "al14", "a9", []string{"rock"}, 390),
	track("t49", "Rieles", 199, "al14", "a9", []string{"rock"}, 365),
	track("t50", "Retorno", 225, "al14", "a9", []string{"latin"}, 355),

	track("t51", "Inner Orbit", 204, "al15", "a10", []string{"electronic", "pop"}, 520),
	track("t52", "Solar Drift", 218, "al15", "a10", []string{"electronic"}, 545),
	track("t53", "Echo Sun", 210, "al15", "a10", []string{"pop", "electronic"}, 510),
	track("t54", "Apogee", 230, "al15", "a10", []string{"electronic"}, 498),
	track("t55", "Perigee", 206, "al15", "a10", []string{"pop"}, 470),

	track("t56", "Neón Solar", 216, "al16", "a10", []string{"electronic", "pop"}, 560),
	track("t57", "Radiación", 209, "al16", "a10", []string{"electronic"}, 535),
	track("t58", "Círculo Polar", 222, "al16", "a10", []string{"electronic"}, 505),
	track("t59", "Luz Fractal", 214, "al16", "a10", []string{"electronic", "pop"}, 495),
	track("t60", "Halo", 207, "al16", "a10", []string{"pop"}, 480),

	track("t61", "Medianoche", 232, "al17", "a11", []string{"jazz", "latin"}, 430),
	track("t62", "Plaza Central", 220, "al17", "a11", []string{"jazz"}, 410),
	track("t63", "Montaña Azul", 215, "al17", "a11", []string{"jazz", "latin"}, 405),
	track("t64", "Café Nocturno", 225, "al17", "a11", []string{"jazz"}, 398),
	track("t65", "Lluvia Fina", 210, "al17", "a11", []string{"latin"}, 385),

	track("t66", "Café Largo", 218, "al18", "a11", []string{"jazz"}, 420),
	track("t67", "Taza 3", 204, "al18", "a11", []string{"jazz"}, 400),
	track("t68", "Ruta del Aroma", 226, "al18", "a11", []string{"jazz", "latin"}, 392),
	track("t69", "Vapor", 209, "al18", "a11", []string{"jazz"}, 378),
	track("t70", "Último Sorbo", 212, "al18", "a11", []string{"latin"}, 365),

	track("t71", "Toma 1", 205, "al19", "a12", []string{"pop"}, 430),
	track("t72", "Corte Final", 210, "al19", "a12", []string{"pop"}, 415),
	track("t73", "Luces de Estudio", 208, "al19", "a12", []string{"pop"}, 405),
	track("t74", "Foco Principal", 214, "al19", "a12", []string{"pop"}, 398),
	track("t75", "Crédito Inicial", 202, "al19", "a12", []string{"pop"}, 390),

	track("t76", "Flash", 200, "al20", "a12", []string{"pop"}, 450),
	track("t77", "Obturador", 207, "al20", "a12", []string{"pop"}, 428),
	track("t78", "ISO Alto", 211, "al20", "a12", []string{"pop"}, 412),
	track("t79", "Enfoque", 206, "al20", "a12", []string{"pop"}, 405),
	track("t80", "Exposición", 213, "al20", "a12", []string{"pop"}, 395),

	track("t81", "Preludio del Sur", 240, "al21", "a13", []string{"classical", "latin"}, 360),
	track("t82", "Danza del Valle", 232, "al21", "a13", []string{"classical", "latin"}, 352),
	track("t83", "Interludio Andino", 245, "al21", "a13", []string{"classical"}, 342),
	track("t84", "Camino Largo", 238, "al21", "a13", []string{"classical"}, 338),
	track("t85", "Final en Do", 250, "al21", "a13", []string{"classical"}, 330),

	track("t86", "Altiplano", 236, "al22", "a13", []string{"classical", "latin"}, 355),
	track("t87", "Cuerda Alta", 244, "al22", "a13", []string{"classical"}, 348),
	track("t88", "Puna", 229, "al22", "a13", []string{"classical", "latin"}, 340),
	track("t89", "Sala de Cámara", 241, "al22", "a13", []string{"classical"}, 332),
	track("t90", "Despedida", 247, "al22", "a13", []string{"classical"}, 325),

	track("t91", "Parque Central", 210, "al23", "a14", []string{"rock", "pop"}, 420),
	track("t92", "Semáforo Rojo", 202, "al23", "a14", []string{"rock"}, 395),
	track("t93", "Avenida Nueve", 215, "al23", "a14", []string{"rock", "latin"}, 388),
	track("t94", "Auto Gris", 208, "al23", "a14", []string{"pop"}, 375),
	track("t95", "Luces Bajas", 214, "al23", "a14", []string{"rock"}, 402),
	track("t96", "Bicicleta Azul", 206, "al23", "a14", []string{"pop"}, 365),
	track("t97", "Bosque Urbano", 220, "al23", "a14", []string{"rock", "pop"}, 390),
	track("t98", "Rojo y Verde", 203, "al23", "a14", []string{"rock"}, 372),
	track("t99", "Niebla en la Ciudad", 217, "al23", "a14", []string{"rock"}, 360),
	track("t100", "Callejón", 211, "al23", "a14", []string{"latin"}, 355),
	track("t101", "Líneas de Luz", 205, "al23", "a14", []string{"pop"}, 348),
	track("t102", "Semilla de Asfalto", 219, "al23", "a14", []string{"rock"}, 341),
	track("t103", "Cruce Peatonal", 207, "al23", "a14", []string{"rock", "pop"}, 339),
	track("t104", "Esquina Norte", 213, "al23", "a14", []string{"rock"}, 333),
	track("t105", "Último Bus", 224, "al23", "a14", []string{"rock", "latin"}, 329),

	track("t106", "Cielo Bajo", 230, "al24", "a16", []string{"pop", "latin"}, 410),
	track("t107", "Horizonte", 218, "al24", "a16", []string{"pop"}, 398),
	track("t108", "Bruma de Verano", 225, "al24", "a16", []string{"latin"}, 392),
	track("t109", "Nube Rosa", 212, "al24", "a16", []string{"pop"}, 385),
	track("t110", "Línea del Mar", 216, "al24", "a16", []string{"latin"}, 380),
	track("t111", "Orilla", 209, "al24", "a16", []string{"pop"}, 372),
	track("t112", "Reflejos", 221, "al24", "a16", []string{"pop", "latin"}, 368),
	track("t113", "Puerto Claro", 214, "al24", "a16", []string{"latin"}, 360),
	track("t114", "Marea Alta", 207, "al24", "a16", []string{"pop"}, 355),
	track("t115", "Viento Salado", 219, "al24", "a16", []string{"latin"}, 350),
	track("t116", "Postales", 211, "al24", "a16", []string{"pop"}, 345),
	track("t117", "Tarde Lenta", 223, "al24", "a16", []string{"pop"}, 340),
	track("t118", "Oriente", 205, "al24", "a16", []string{"latin"}, 335),
	track("t119", "Contorno", 217, "al24", "a16", []string{"pop"}, 330),
	track("t120", "Azul Profundo", 228, "al24", "a16", []string{"pop", "latin"}, 325),

	track("t121", "Noches Claras", 210, "al25", "a20", []string{"electronic"}, 430),
	track("t122", "Pulsos", 204, "al25", "a20", []string{"electronic"}, 420),
	track("t123", "Cielo Neón", 218, "al25", "a20", []string{"electronic"}, 412),
	track("t124", "Luz Blanca", 213, "al25", "a20", []string{"electronic", "pop"}, 408),
	track("t125", "Ventana Azul", 207, "al25", "a20", []string{"electronic"}, 402),
	track("t126", "Cables", 220, "al25", "a20", []string{"electronic"}, 398),
	track("t127", "Parpadeo", 202, "al25", "a20", []string{"electronic"}, 392),
	track("t128", "Circuito", 215, "al25", "a20", []string{"electronic"}, 387),
	track("t129", "Techo Bajo", 209, "al25", "a20", []string{"electronic"}, 382),
	track("t130", "Filtro", 216, "al25", "a20", []string{"electronic", "pop"}, 377),
	track("t131", "Anochecer", 222, "al25", "a20", []string{"electronic"}, 371),
	track("t132", "Piso 14", 211, "al25", "a20", []string{"electronic"}, 366),
	track("t133", "Sombras LED", 219, "al25", "a20", []string{"electronic"}, 360),
	track("t134", "Estática", 206, "al25", "a20", []string{"electronic"}, 355),
	track("t135", "Última Luz", 224, "al25", "a20", []string{"electronic"}, 350),

	track("t136", "Noche en Ruta", 212, "al12", "a8", []string{"rock", "latin"}, 345),
	track("t137", "Río III", 208, "al11", "a6", []string{"pop", "electronic"}, 360),
	track("t138", "Suite III", 260, "al9", "a5", []string{"classical"}, 340),
	track("t139", "Campo Abierto", 234, "al21", "a13", []string{"classical", "latin"}, 330),
	track("t140", "Neón Andino", 218, "al7", "a4", []string{"electronic"}, 355),
}

// Users 示例用户，API 不提供创建接口，直接写入
var Users = []model.User{
	{Key: "u1", Name: "Ana", Email: "ana@example.com"},
	{Key: "u2", Name: "Luis", Email: "luis@example.com"},
	{Key: "u3", Name: "Sofía", Email: "sofia@example.com"},
	{Key: "u4", Name: "Diego", Email: "diego@example.com"},
	{Key: "u5", Name: "Mia", Email: "mia@example.com"},
}

// playlistSeed keeps the creation offset in days relative to the seed time.
type playlistSeed struct {
	Key     string
	Title   string
	UserKey string
	DaysAgo int64
}

var playlists = []playlistSeed{
	{Key: "p1", Title: "Mañanas Pop", UserKey: "u1", DaysAgo: 5},
	{Key: "p2", Title: "Jazz Café", UserKey: "u2", DaysAgo: 3},
	{Key: "p3", Title: "Electro Run", UserKey: "u3", DaysAgo: 10},
	{Key: "p4", Title: "Clásicos PE", UserKey: "u4", DaysAgo: 20},
	{Key: "p5", Title: "Rock Ruta", UserKey: "u5", DaysAgo: 1},
	{Key: "p6", Title: "Focus Jazz", UserKey: "u1", DaysAgo: 2},
	{Key: "p7", Title: "Relax Andina", UserKey: "u2", DaysAgo: 7},
	{Key: "p8", Title: "Top Electrónica", UserKey: "u3", DaysAgo: 4},
}
