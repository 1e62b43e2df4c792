package constants

// DefaultChecklist is seeded verbatim on every new inspection. The titles
// come from the shop's paper checklist and stay in Portuguese.
var DefaultChecklist = []string{
	"Calibragem verificada",
	"Vazamento de ar",
	"Danos visuais (cortes/bolhas)",
	"Desgaste irregular",
	"Torque porca de roda verificado",
}
