package gen

// Word pools for synthetic records. Statistical realism is out of scope; the
// pools only need enough variety to exercise the store.

var firstNames = []string{
	"María", "José", "Juan", "Guadalupe", "Francisco", "Jesús", "Antonio",
	"Alejandro", "Luis", "Carlos", "Fernanda", "Sofía", "Valentina", "Camila",
	"Ximena", "Andrea", "Daniela", "Regina", "Mariana", "Gabriela", "Diego",
	"Miguel", "Santiago", "Sebastián", "Leonardo", "Emiliano", "Mateo",
	"Daniel", "Adrián", "Rodrigo", "Lucía", "Elena", "Carmen", "Rosa",
	"Patricia", "Verónica", "Claudia", "Alicia", "Beatriz", "Silvia",
}

var lastNames = []string{
	"Hernández", "García", "Martínez", "López", "González", "Pérez",
	"Rodríguez", "Sánchez", "Ramírez", "Cruz", "Flores", "Gómez", "Morales",
	"Vázquez", "Reyes", "Jiménez", "Torres", "Díaz", "Gutiérrez", "Ruiz",
	"Mendoza", "Aguilar", "Ortiz", "Moreno", "Castillo", "Romero", "Álvarez",
	"Chávez", "Rivera", "Juárez",
}

var emailDomains = []string{
	"gmail.com", "hotmail.com", "outlook.com", "yahoo.com.mx",
	"protonmail.com", "icloud.com", "correo.mx", "example.com",
}

var categoryNames = []string{
	"Electrónica", "Ropa", "Hogar", "Deportes", "Libros",
	"Juguetes", "Alimentos", "Belleza", "Automotriz", "Jardinería",
	"Música", "Cine", "Gaming", "Oficina", "Mascotas", "Farmacia",
	"Construcción", "Arte", "Fotografía", "Tecnología",
}

var productAdjectives = []string{
	"Premium", "Clásico", "Compacto", "Profesional", "Ligero", "Resistente",
	"Ergonómico", "Portátil", "Inteligente", "Deluxe", "Universal", "Plegable",
	"Inalámbrico", "Recargable", "Ecológico", "Artesanal",
}

var productNouns = []string{
	"Lámpara", "Mochila", "Teclado", "Sartén", "Silla", "Reloj", "Bocina",
	"Cafetera", "Balón", "Cuaderno", "Ventilador", "Audífonos", "Taladro",
	"Licuadora", "Monitor", "Escritorio", "Tenis", "Chamarra", "Termo",
	"Cámara",
}

var descriptionWords = []string{
	"calidad", "diseño", "garantía", "material", "acabado", "durable",
	"moderno", "versátil", "ideal", "uso", "diario", "hogar", "oficina",
	"resistente", "compacto", "ligero", "práctico", "elegante", "funcional",
	"original",
}

var streetNames = []string{
	"Av. Insurgentes", "Calle Reforma", "Av. Juárez", "Calle Hidalgo",
	"Av. Universidad", "Calle Morelos", "Blvd. Independencia", "Calle Zaragoza",
	"Av. Revolución", "Calle Allende", "Av. Constituyentes", "Calle Madero",
}

var cityNames = []string{
	"Ciudad de México", "Guadalajara", "Monterrey", "Puebla", "Tijuana",
	"León", "Querétaro", "Mérida", "Toluca", "Cancún", "Chihuahua",
	"Aguascalientes", "Morelia", "Veracruz", "Saltillo",
}
