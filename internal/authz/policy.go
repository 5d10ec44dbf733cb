package authz

import (
	"employee-portal/internal/entities"
	apperrors "employee-portal/pkg/errors"
)

// Actor — аутентифицированный пользователь, выполняющий операцию.
// Собирается на каждый запрос из проверенного токена и нигде не хранится.
type Actor struct {
	ID   uint64
	Role entities.Role
}

// CanCreate решает, может ли actor создать запись с ролью newRole, и
// возвращает эффективный manager_id для новой записи.
//
// Порядок правил фиксирован:
//  1. Супервайзер не может создавать админов и супервайзеров.
//  2. Всё, что создаёт супервайзер, закрепляется за ним самим —
//     присланный клиентом manager_id игнорируется.
//  3. Новый супервайзер без руководителя закрепляется за создавшим его
//     админом.
//  4. Иначе manager_id берётся из запроса как есть (включая nil).
func CanCreate(actor Actor, newRole entities.Role, requestedManagerID *uint64) (*uint64, error) {
	if actor.Role == entities.RoleSupervisor &&
		(newRole == entities.RoleAdmin || newRole == entities.RoleSupervisor) {
		return nil, apperrors.ErrRoleEscalation
	}

	if actor.Role == entities.RoleSupervisor {
		managerID := actor.ID
		return &managerID, nil
	}

	if actor.Role == entities.RoleAdmin && newRole == entities.RoleSupervisor && requestedManagerID == nil {
		managerID := actor.ID
		return &managerID, nil
	}

	return requestedManagerID, nil
}

// CanUpdate решает, может ли actor изменять запись target.
// Супервайзер правит только своих подчинённых (target.ManagerID == actor.ID),
// админ — кого угодно. Роль Employee до этой проверки не доходит:
// её отсекает capability-gate на маршрутах.
func CanUpdate(actor Actor, target *entities.Employee) error {
	if actor.Role != entities.RoleSupervisor {
		return nil
	}
	if target.ManagerID == nil || *target.ManagerID != actor.ID {
		return apperrors.ErrNotYourEmployee
	}
	return nil
}

// CanDelete решает, может ли actor удалить запись.
// Удаление доступно только админу; для супервайзера запрет безусловный,
// владение записью роли не играет.
func CanDelete(actor Actor) error {
	if actor.Role == entities.RoleSupervisor {
		return apperrors.ErrSupervisorDelete
	}
	return nil
}
