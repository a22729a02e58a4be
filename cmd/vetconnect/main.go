package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/luciano/vetconnect-go/internal/adapters/mockdata"
	"github.com/luciano/vetconnect-go/internal/adapters/restapi"
	"github.com/luciano/vetconnect-go/internal/application/services"
	"github.com/luciano/vetconnect-go/internal/domain/entities"
	"github.com/luciano/vetconnect-go/internal/domain/repositories"
	"github.com/luciano/vetconnect-go/internal/infrastructure/clients/vetapi"
	"github.com/luciano/vetconnect-go/internal/infrastructure/observability"
	"github.com/luciano/vetconnect-go/internal/session"
	"github.com/luciano/vetconnect-go/internal/viewmodel"
	"github.com/luciano/vetconnect-go/pkg/config"
)

// repoSet groups one backend's repository implementations
type repoSet struct {
	auth      repositories.AuthRepository
	vets      repositories.VeterinaryRepository
	services  repositories.ServiceRepository
	reviews   repositories.ReviewRepository
	favorites repositories.FavoriteRepository
	users     repositories.UserRepository
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}

	observability.InitLogger("vetconnect", cfg.Log.Environment, cfg.Log.Level)

	sess := session.NewManager(cfg.Session.Path)
	repos := buildRepositories(cfg, sess)

	authService := services.NewAuthService(repos.auth)
	vetService := services.NewVetCenterService(repos.vets, repos.services, repos.reviews)
	searchService := services.NewSearchService(repos.vets, repos.services)
	favoriteService := services.NewFavoriteService(repos.favorites, repos.vets)
	reviewService := services.NewReviewService(repos.reviews)

	scope := viewmodel.NewScope(context.Background())
	defer scope.Close()

	app := &app{
		session:   sess,
		login:     viewmodel.NewLoginViewModel(scope, authService, sess),
		register:  viewmodel.NewRegisterViewModel(scope, authService),
		search:    viewmodel.NewSearchViewModel(scope, searchService),
		detail:    viewmodel.NewVetDetailViewModel(scope, vetService, favoriteService, sess),
		favorites: viewmodel.NewFavoritesViewModel(scope, favoriteService, sess),
		reviews:   viewmodel.NewReviewsViewModel(scope, reviewService),
		profile:   viewmodel.NewVetProfileViewModel(scope, vetService, sess),
		account:   viewmodel.NewProfileViewModel(scope, repos.users, sess),
		password:  viewmodel.NewChangePasswordViewModel(scope, authService, sess),
		services:  viewmodel.NewVetServicesViewModel(scope, vetService),
	}
	app.run()
}

// buildRepositories picks the mock or remote backend per configuration
func buildRepositories(cfg *config.Config, sess *session.Manager) repoSet {
	if cfg.Mock.Enabled {
		client := vetapi.NewClient(
			cfg.Mock.BaseURL,
			vetapi.WithTimeout(cfg.API.RequestTimeout),
			vetapi.WithConnectTimeout(cfg.API.ConnectTimeout),
		)
		source := mockdata.NewSource(client, mockdata.DefaultDocumentPaths())
		log.Info().Str("url", cfg.Mock.BaseURL).Msg("Using mock backend")
		return repoSet{
			auth:      mockdata.NewAuthAdapter(source),
			vets:      mockdata.NewVeterinaryAdapter(source),
			services:  mockdata.NewServiceAdapter(source),
			reviews:   mockdata.NewReviewAdapter(source),
			favorites: mockdata.NewFavoriteAdapter(source),
			users:     mockdata.NewUserAdapter(source),
		}
	}

	client := vetapi.NewClient(
		cfg.API.BaseURL,
		vetapi.WithTimeout(cfg.API.RequestTimeout),
		vetapi.WithConnectTimeout(cfg.API.ConnectTimeout),
		vetapi.WithTokenSource(sess.Token),
	)
	log.Info().Str("url", cfg.API.BaseURL).Msg("Using remote backend")
	return repoSet{
		auth:      restapi.NewAuthAdapter(client),
		vets:      restapi.NewVeterinaryAdapter(client),
		services:  restapi.NewServiceAdapter(client),
		reviews:   restapi.NewReviewAdapter(client),
		favorites: restapi.NewFavoriteAdapter(client),
		users:     restapi.NewUserAdapter(client),
	}
}

// app is the line-oriented shell over the view-models
type app struct {
	session   *session.Manager
	login     *viewmodel.LoginViewModel
	register  *viewmodel.RegisterViewModel
	search    *viewmodel.SearchViewModel
	detail    *viewmodel.VetDetailViewModel
	favorites *viewmodel.FavoritesViewModel
	reviews   *viewmodel.ReviewsViewModel
	profile   *viewmodel.VetProfileViewModel
	account   *viewmodel.ProfileViewModel
	password  *viewmodel.ChangePasswordViewModel
	services  *viewmodel.VetServicesViewModel
}

func (a *app) run() {
	fmt.Println("VetConnect. Escriba 'help' para ver los comandos.")
	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			return
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		fields := strings.Fields(line)
		cmd, args := fields[0], fields[1:]
		if cmd == "quit" || cmd == "exit" {
			return
		}
		a.dispatch(cmd, args)
	}
}

func (a *app) dispatch(cmd string, args []string) {
	switch cmd {
	case "help":
		a.printHelp()
	case "login":
		if len(args) != 2 {
			fmt.Println("uso: login <email> <contraseña>")
			return
		}
		<-a.login.Login(args[0], args[1])
		st := a.login.State.Get()
		if st.Phase == viewmodel.PhaseSuccess {
			kind := "cliente"
			if st.Data.IsVetUser {
				kind = "veterinaria"
			}
			fmt.Printf("Bienvenido %s (%s)\n", st.Data.User.Name, kind)
		} else {
			fmt.Println(st.Message)
		}
	case "register":
		if len(args) < 6 {
			fmt.Println("uso: register <email> <contraseña> <confirmar> <nombre> <dni> <teléfono> [dirección...]")
			return
		}
		address := strings.Join(args[6:], " ")
		<-a.register.RegisterClient(args[0], args[1], args[2], args[3], args[4], args[5], address)
		a.printMessageState(a.register.State.Get())
	case "registervet":
		if len(args) < 7 {
			fmt.Println("uso: registervet <email> <contraseña> <confirmar> <nombre-clínica> <ruc> <licencia> <teléfono> [dirección...]")
			return
		}
		address := strings.Join(args[7:], " ")
		<-a.register.RegisterVeterinary(args[0], args[1], args[2], args[3], args[4], args[5], address, args[6])
		a.printMessageState(a.register.State.Get())
	case "logout":
		if err := a.session.Clear(); err != nil {
			log.Warn().Err(err).Msg("could not clear session")
		}
		fmt.Println("Sesión cerrada")
	case "search":
		<-a.search.Search(strings.Join(args, " "))
		a.printSearchState()
	case "sort":
		if len(args) != 1 {
			fmt.Println("uso: sort <NAME_ASC|NAME_DESC|RATING_HIGH|RATING_LOW|PRICE_LOW|PRICE_HIGH>")
			return
		}
		a.search.UpdateSortOption(entities.SortOption(args[0]))
		a.printSearchState()
	case "detail":
		if len(args) != 1 {
			fmt.Println("uso: detail <id>")
			return
		}
		<-a.detail.Load(args[0])
		a.printDetailState()
	case "fav":
		<-a.detail.ToggleFavorite()
		a.printDetailState()
	case "favorites":
		<-a.favorites.Load()
		st := a.favorites.State.Get()
		if st.Phase != viewmodel.PhaseSuccess {
			fmt.Println(st.Message)
			return
		}
		for _, v := range st.Data {
			fmt.Printf("%s  %s (%.1f)\n", v.ID, v.Name, v.Rating)
		}
	case "reviews":
		if len(args) != 1 {
			fmt.Println("uso: reviews <id-veterinaria>")
			return
		}
		<-a.reviews.LoadForVeterinary(args[0])
		st := a.reviews.State.Get()
		if st.Phase != viewmodel.PhaseSuccess {
			fmt.Println(st.Message)
			return
		}
		for _, r := range st.Data {
			fmt.Printf("[%d/5] %s: %s\n", r.Rating, r.UserName, r.Comment)
		}
	case "profile":
		<-a.profile.Load()
		st := a.profile.State.Get()
		if st.Phase != viewmodel.PhaseSuccess {
			fmt.Println(st.Message)
			return
		}
		v := st.Data.Veterinary
		fmt.Printf("%s\n%s\nCalificación %.1f (%d reseñas), %d imágenes\n",
			v.Name, v.Address, v.Rating, v.TotalReviews, len(st.Data.Images))
	case "account":
		<-a.account.Load()
		st := a.account.State.Get()
		if st.Phase != viewmodel.PhaseSuccess {
			fmt.Println(st.Message)
			return
		}
		fmt.Printf("%s\n%s\nTel. %s\n", st.Data.Name, st.Data.Email, st.Data.Phone)
	case "password":
		if len(args) != 3 {
			fmt.Println("uso: password <actual> <nueva> <confirmar>")
			return
		}
		<-a.password.Change(args[0], args[1], args[2])
		a.printMessageState(a.password.State.Get())
	case "services":
		if len(args) != 1 {
			fmt.Println("uso: services <id-veterinaria>")
			return
		}
		<-a.services.Load(args[0])
		st := a.services.State.Get()
		if st.Phase != viewmodel.PhaseSuccess {
			fmt.Println(st.Message)
			return
		}
		for _, svc := range st.Data {
			fmt.Printf("%s  %s  S/ %.2f\n", svc.ID, svc.Name, svc.Price)
		}
	default:
		fmt.Println("Comando desconocido. Escriba 'help'.")
	}
}

// printMessageState prints the Data of a message-carrying holder on Success
// and the error message otherwise
func (a *app) printMessageState(st viewmodel.State[string]) {
	if st.Phase == viewmodel.PhaseSuccess {
		fmt.Println(st.Data)
		return
	}
	fmt.Println(st.Message)
}

func (a *app) printSearchState() {
	st := a.search.State.Get()
	switch st.Phase {
	case viewmodel.PhaseInitial:
		fmt.Println("Ingrese un término de búsqueda")
	case viewmodel.PhaseSuccess:
		for _, row := range st.Data {
			fmt.Printf("%s  %s (%.1f)  %s\n",
				row.Veterinary.ID, row.Veterinary.Name, row.Veterinary.Rating, row.Veterinary.Address)
		}
	default:
		fmt.Println(st.Message)
	}
}

func (a *app) printDetailState() {
	st := a.detail.State.Get()
	if st.Phase != viewmodel.PhaseSuccess {
		fmt.Println(st.Message)
		return
	}
	d := st.Data.Details
	mark := ""
	if st.Data.IsFavorite {
		mark = " ★"
	}
	fmt.Printf("%s%s\n%s\n%d servicios, %d reseñas\n",
		d.Veterinary.Name, mark, d.Veterinary.Address, len(d.Services), len(d.Reviews))
}

func (a *app) printHelp() {
	fmt.Println(`Comandos:
  login <email> <contraseña>   iniciar sesión
  register <email> <contraseña> <confirmar> <nombre> <dni> <teléfono> [dirección...]
                               registrarse como dueño de mascota
  registervet <email> <contraseña> <confirmar> <nombre-clínica> <ruc> <licencia> <teléfono> [dirección...]
                               registrar una clínica veterinaria
  logout                       cerrar sesión
  search <texto>               buscar veterinarias
  sort <opción>                reordenar resultados
  detail <id>                  ver detalle de una veterinaria
  fav                          marcar/desmarcar favorita la veterinaria abierta
  favorites                    listar favoritas
  reviews <id>                 reseñas de una veterinaria
  profile                      perfil de la clínica (cuenta veterinaria)
  account                      datos de la cuenta
  password <actual> <nueva> <confirmar>
                               cambiar la contraseña
  services <id-veterinaria>    servicios de una veterinaria
  quit                         salir`)
}
